package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/render/template/gotemplate"
	"github.com/goliatone/go-unithtml/pkg/units"
)

//go:embed defaults.yaml
var embedded embed.FS

// Config is the on-disk formatter configuration. Paren and Sanitize are
// pointers so an overlay can switch them off again.
type Config struct {
	Style          string         `json:"style" yaml:"style"`
	Font           string         `json:"font" yaml:"font"`
	Multiplication *string        `json:"multiplication" yaml:"multiplication"`
	Paren          *bool          `json:"paren" yaml:"paren"`
	Sanitize       *bool          `json:"sanitize" yaml:"sanitize"`
	Template       string         `json:"template" yaml:"template"`
	TemplateDir    string         `json:"template_dir" yaml:"template_dir"`
	TemplateFile   string         `json:"template_file" yaml:"template_file"`
	Globals        map[string]any `json:"globals" yaml:"globals"`
	Theme          *ThemeConfig   `json:"theme" yaml:"theme"`
	Styles         []StyleConfig  `json:"styles" yaml:"styles"`
	Units          []UnitConfig   `json:"units" yaml:"units"`

	// templates resolves relative template paths; nil means the working
	// directory.
	templates fs.FS
}

// ThemeConfig selects a go-theme manifest and the token whose value colours
// the output. The manifest is either loaded from Manifest or built from the
// inline Tokens and Variants.
type ThemeConfig struct {
	Name     string                       `json:"name" yaml:"name"`
	Version  string                       `json:"version" yaml:"version"`
	Variant  string                       `json:"variant" yaml:"variant"`
	Token    string                       `json:"token" yaml:"token"`
	Manifest string                       `json:"manifest" yaml:"manifest"`
	Tokens   map[string]string            `json:"tokens" yaml:"tokens"`
	Variants map[string]map[string]string `json:"variants" yaml:"variants"`

	base fs.FS
}

// StyleConfig declares an extra style preset.
type StyleConfig struct {
	Name           string  `json:"name" yaml:"name"`
	Description    string  `json:"description" yaml:"description"`
	Font           string  `json:"font" yaml:"font"`
	Multiplication *string `json:"multiplication" yaml:"multiplication"`
	Paren          bool    `json:"paren" yaml:"paren"`
	Sanitize       bool    `json:"sanitize" yaml:"sanitize"`
}

// UnitConfig declares a custom unit. Compound units take their symbol as the
// expression they stand for, with or without parentheses.
type UnitConfig struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Compound bool   `json:"compound" yaml:"compound"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	return LoadFS(embedded, "defaults.yaml")
}

// Load reads a configuration file from disk. Relative template and theme
// manifest paths resolve against the file's directory.
func Load(file string) (Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", file, err)
	}
	cfg, err := Parse(data, file)
	if err != nil {
		return Config{}, err
	}
	cfg.attach(os.DirFS(filepath.Dir(file)))
	return cfg, nil
}

// LoadFS reads a configuration file from fsys. Relative template and theme
// manifest paths resolve against the file's directory inside fsys.
func LoadFS(fsys fs.FS, file string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("config: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", file, err)
	}
	cfg, err := Parse(data, file)
	if err != nil {
		return Config{}, err
	}
	base, err := fs.Sub(fsys, path.Dir(file))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", file, err)
	}
	cfg.attach(base)
	return cfg, nil
}

func (c *Config) attach(base fs.FS) {
	c.templates = base
	if c.Theme != nil {
		c.Theme.base = base
	}
}

// Parse decodes JSON or YAML content. source is only used in error messages.
func Parse(data []byte, source string) (Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}

	cfg = Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return cfg, nil
}

// Merge overlays other on c. Fields set in other win; styles and units are
// appended and globals are merged key by key. An inline template and a
// template file replace each other, and a template file keeps the directory
// of the config that named it.
func (c Config) Merge(other Config) Config {
	out := c
	if other.Style != "" {
		out.Style = other.Style
	}
	if other.Font != "" {
		out.Font = other.Font
	}
	if other.Multiplication != nil {
		out.Multiplication = other.Multiplication
	}
	if other.Paren != nil {
		out.Paren = other.Paren
	}
	if other.Sanitize != nil {
		out.Sanitize = other.Sanitize
	}
	if other.Template != "" {
		out.Template = other.Template
		out.TemplateFile = ""
	}
	if other.TemplateFile != "" || other.TemplateDir != "" {
		out.TemplateFile = other.TemplateFile
		out.TemplateDir = other.TemplateDir
		out.templates = other.templates
		if other.TemplateFile != "" {
			out.Template = ""
		}
	}
	if other.Theme != nil {
		out.Theme = other.Theme
	}
	if len(other.Globals) > 0 {
		out.Globals = make(map[string]any, len(c.Globals)+len(other.Globals))
		for key, value := range c.Globals {
			out.Globals[key] = value
		}
		for key, value := range other.Globals {
			out.Globals[key] = value
		}
	}
	out.Styles = append(append([]StyleConfig(nil), c.Styles...), other.Styles...)
	out.Units = append(append([]UnitConfig(nil), c.Units...), other.Units...)
	return out
}

// StylePresets converts the declared styles. A style without a
// multiplication entry uses markup.DefaultMultiplication.
func (c Config) StylePresets() []markup.Style {
	out := make([]markup.Style, 0, len(c.Styles))
	for _, s := range c.Styles {
		mult := markup.DefaultMultiplication
		if s.Multiplication != nil {
			mult = *s.Multiplication
		}
		out = append(out, markup.Style{
			Name:           strings.TrimSpace(s.Name),
			Description:    s.Description,
			Font:           s.Font,
			Multiplication: mult,
			Paren:          s.Paren,
			Sanitize:       s.Sanitize,
		})
	}
	return out
}

// RegisterStyles adds the declared styles to reg.
func (c Config) RegisterStyles(reg *markup.Registry) error {
	for _, style := range c.StylePresets() {
		if err := reg.Register(style); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// RegisterUnits adds the declared units to reg.
func (c Config) RegisterUnits(reg *units.Registry) error {
	for idx, def := range c.Units {
		symbol := strings.TrimSpace(def.Symbol)
		if symbol == "" {
			return fmt.Errorf("config: unit at index %d has no symbol", idx)
		}
		var u *units.Unit
		if def.Compound {
			u = units.NewCompoundUnit(symbol)
		} else {
			name := def.Name
			if name == "" {
				name = symbol
			}
			u = units.NewUnit(symbol, name)
		}
		if err := reg.Register(u); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// ThemeSelection registers the configured manifest in a go-theme registry and
// selects the configured variant. It returns nil when no theme is configured.
func (c Config) ThemeSelection() (*theme.Selection, error) {
	if c.Theme == nil {
		return nil, nil
	}
	manifest, err := c.Theme.manifest()
	if err != nil {
		return nil, err
	}

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("config: theme %s: %w", manifest.Name, err)
	}
	selector := theme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: c.Theme.Variant,
	}
	selection, err := selector.Select(c.Theme.Name, c.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return selection, nil
}

func (t ThemeConfig) manifest() (*theme.Manifest, error) {
	if file := strings.TrimSpace(t.Manifest); file != "" {
		fsys, name := t.base, filepath.ToSlash(file)
		if fsys == nil || filepath.IsAbs(file) {
			fsys, name = os.DirFS(filepath.Dir(file)), filepath.Base(file)
		}
		manifest, err := theme.LoadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("config: theme: %w", err)
		}
		return manifest, nil
	}

	manifest := &theme.Manifest{
		Name:    strings.TrimSpace(t.Name),
		Version: strings.TrimSpace(t.Version),
		Tokens:  t.Tokens,
	}
	if manifest.Version == "" {
		manifest.Version = "0.0.0"
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, tokens := range t.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: tokens}
		}
	}
	return manifest, nil
}

// Options resolves the configuration into formatter options. The named style
// is looked up in styles and applied first; theme, font, glyph, wrapping,
// template and sanitising follow in that order, so an explicit font beats a
// theme colour and an explicit paren or sanitize beats the style.
func (c Config) Options(styles *markup.Registry) ([]markup.Option, error) {
	var opts []markup.Option

	if name := strings.TrimSpace(c.Style); name != "" {
		if styles == nil {
			return nil, fmt.Errorf("config: style %q requested without a style registry", name)
		}
		style, err := styles.Get(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, style.Options()...)
	}

	selection, err := c.ThemeSelection()
	if err != nil {
		return nil, err
	}
	if selection != nil {
		opts = append(opts, markup.WithTheme(selection, c.Theme.Token))
	}
	if c.Font != "" {
		opts = append(opts, markup.WithFont(c.Font))
	}
	if c.Multiplication != nil {
		opts = append(opts, markup.WithMultiplication(*c.Multiplication))
	}
	if c.Paren != nil {
		opts = append(opts, markup.WithParen(*c.Paren))
	}

	templateOpt, err := c.templateOption()
	if err != nil {
		return nil, err
	}
	if templateOpt != nil {
		opts = append(opts, templateOpt)
	}

	if c.Sanitize != nil {
		if *c.Sanitize {
			opts = append(opts, markup.WithSanitize())
		} else {
			opts = append(opts, markup.WithSanitizer(nil))
		}
	}
	return opts, nil
}

// templateOption builds the pongo2 engine for an inline template or a
// template file. A template file without template_dir is a path of its own.
func (c Config) templateOption() (markup.Option, error) {
	inline := strings.TrimSpace(c.Template)
	dir, name := strings.TrimSpace(c.TemplateDir), strings.TrimSpace(c.TemplateFile)
	if inline == "" && name == "" {
		return nil, nil
	}

	var engineOpts []gotemplate.Option
	if len(c.Globals) > 0 {
		engineOpts = append(engineOpts, gotemplate.WithGlobals(c.Globals))
	}
	if name != "" {
		if dir == "" {
			dir, name = filepath.Dir(name), filepath.Base(name)
		}
		if c.templates != nil && !filepath.IsAbs(dir) {
			sub, err := fs.Sub(c.templates, filepath.ToSlash(filepath.Clean(dir)))
			if err != nil {
				return nil, fmt.Errorf("config: template dir %s: %w", dir, err)
			}
			engineOpts = append(engineOpts, gotemplate.WithFS(sub))
		} else {
			engineOpts = append(engineOpts, gotemplate.WithDir(dir))
		}
	}

	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("config: template engine: %w", err)
	}
	if name != "" {
		return markup.WithTemplateFile(engine, name), nil
	}
	return markup.WithTemplate(engine, inline), nil
}

// Formatter builds a formatter from the configuration.
func (c Config) Formatter(styles *markup.Registry) (*markup.Formatter, error) {
	opts, err := c.Options(styles)
	if err != nil {
		return nil, err
	}
	f, err := markup.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return f, nil
}
