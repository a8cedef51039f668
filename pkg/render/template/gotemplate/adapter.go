package gotemplate

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-unithtml/pkg/render/template"
)

// Extension is appended to named templates that do not carry it.
const Extension = ".tpl"

// Option configures an Engine.
type Option func(*options)

type options struct {
	dir     string
	files   fs.FS
	globals map[string]any
}

// WithDir loads named templates from a directory on disk.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads named templates from files.
func WithFS(files fs.FS) Option {
	return func(o *options) {
		o.files = files
	}
}

// WithGlobals makes values available to every template, e.g. a colour or a
// CSS class shared by all unit fonts.
func WithGlobals(globals map[string]any) Option {
	return func(o *options) {
		if len(globals) == 0 {
			return
		}
		if o.globals == nil {
			o.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			o.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders unit font templates with pongo2. Compiled templates are
// cached, so an Engine is meant to be built once and shared.
type Engine struct {
	set *pongo2.TemplateSet

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Without WithDir or WithFS only inline templates
// render.
func New(opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var loaders []pongo2.TemplateLoader
	if o.dir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(o.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %s: %w", o.dir, err)
		}
		loaders = append(loaders, loader)
	}
	if o.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(o.files))
	}
	if len(loaders) == 0 {
		loaders = append(loaders, pongo2.NewFSLoader(emptyFS{}))
	}

	set := pongo2.NewSet("unithtml", loaders...)
	if set.Globals == nil {
		set.Globals = pongo2.Context{}
	}
	set.Globals.Update(toContext(o.globals))

	registerFilters()
	return &Engine{set: set, cache: make(map[string]*pongo2.Template)}, nil
}

// RenderTemplate renders the named template. Extension is appended when name
// has no extension of its own.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("gotemplate: template name is required")
	}
	if !strings.Contains(name[strings.LastIndex(name, "/")+1:], ".") {
		name += Extension
	}
	return e.render("file:"+name, data, func() (*pongo2.Template, error) {
		return e.set.FromFile(name)
	})
}

// RenderString renders inline template content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	return e.render("inline:"+content, data, func() (*pongo2.Template, error) {
		return e.set.FromString(content)
	})
}

func (e *Engine) render(key string, data map[string]any, compile func() (*pongo2.Template, error)) (string, error) {
	tmpl, err := e.compiled(key, compile)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(toContext(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute: %w", err)
	}
	return out, nil
}

func (e *Engine) compiled(key string, compile func() (*pongo2.Template, error)) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := compile()
	if err != nil {
		return nil, fmt.Errorf("gotemplate: compile %s: %w", strings.TrimPrefix(key, "file:"), err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[key]; ok {
		return cached, nil
	}
	e.cache[key] = tmpl
	return tmpl, nil
}

// toContext copies data into a pongo2 context, marking template.HTML values
// safe so the unit markup is not escaped.
func toContext(data map[string]any) pongo2.Context {
	ctx := make(pongo2.Context, len(data))
	for key, value := range data {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if markup, ok := value.(template.HTML); ok {
			ctx[key] = pongo2.AsSafeValue(string(markup))
			continue
		}
		ctx[key] = value
	}
	return ctx
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

var filtersOnce sync.Once

// registerFilters adds the unit filters. pongo2 filters are process-wide.
func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("sup") {
			_ = pongo2.RegisterFilter("sup", filterSup)
		}
	})
}

// filterSup wraps the value in a superscript tag, escaping its text.
func filterSup(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	text := in.String()
	if text == "" {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsSafeValue("<sup>" + html.EscapeString(text) + "</sup>"), nil
}
