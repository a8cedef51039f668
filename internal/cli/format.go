package cli

import (
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-unithtml/pkg/config"
	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

type formatFlags struct {
	style        string
	font         string
	mult         string
	paren        bool
	template     string
	templateFile string
	templateDir  string
	sanitize     bool
	text         bool
	raw          bool
}

func newFormatCommand(app *App) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format EXPR...",
		Short: "Render unit expressions as HTML",
		Example: `  unithtml format "kg*m**2/s**2"
  unithtml format --paren --mult '&times;' "mol/L" "J/(K*mol)"
  unithtml format --raw "kg*m**2*s**-2"
  unithtml format --template-dir ./fonts --template-file abbr "J/(K*mol)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.formatter(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				rendered, err := app.render(f, arg, flags.raw)
				if err != nil {
					return err
				}
				if flags.text {
					rendered = html2text.HTML2Text(rendered)
				}
				fmt.Fprintln(out, rendered)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.style, "style", "s", "", "style preset name, see the styles command")
	cmd.Flags().StringVar(&flags.font, "font", "", "printf font template with one %s, e.g. '<b>%s</b>'")
	cmd.Flags().StringVar(&flags.mult, "mult", markup.DefaultMultiplication, "multiplication glyph")
	cmd.Flags().BoolVar(&flags.paren, "paren", false, "wrap non-compound units in parentheses")
	cmd.Flags().StringVar(&flags.template, "template", "", "pongo2 template; the markup is available as {{ units }}")
	cmd.Flags().StringVar(&flags.templateFile, "template-file", "", "pongo2 template file, looked up in --template-dir when set")
	cmd.Flags().StringVar(&flags.templateDir, "template-dir", "", "directory holding named templates")
	cmd.Flags().BoolVar(&flags.sanitize, "sanitize", false, "sanitise the output HTML")
	cmd.Flags().BoolVar(&flags.text, "text", false, "print a plain-text preview instead of HTML")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "treat arguments as canonical text without parsing")

	return cmd
}

func (a *App) formatter(cmd *cobra.Command, flags *formatFlags) (*markup.Formatter, error) {
	overlay := config.Config{
		Style:        flags.style,
		Font:         flags.font,
		Template:     flags.template,
		TemplateFile: flags.templateFile,
		TemplateDir:  flags.templateDir,
	}
	if cmd.Flags().Changed("mult") {
		mult := flags.mult
		overlay.Multiplication = &mult
	}
	if cmd.Flags().Changed("paren") {
		paren := flags.paren
		overlay.Paren = &paren
	}
	if cmd.Flags().Changed("sanitize") {
		sanitize := flags.sanitize
		overlay.Sanitize = &sanitize
	}

	cfg := a.cfg.Merge(overlay)
	a.logger.Debug("building formatter",
		zap.String("style", cfg.Style),
		zap.Boolp("paren", cfg.Paren),
		zap.Boolp("sanitize", cfg.Sanitize),
		zap.String("template_file", cfg.TemplateFile),
	)
	return cfg.Formatter(a.styles)
}

func (a *App) render(f *markup.Formatter, expr string, raw bool) (string, error) {
	expr = strings.TrimSpace(expr)
	if raw {
		return f.Format(units.Canonical(expr))
	}
	d, err := a.units.Parse(expr)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", expr, err)
	}
	return f.Format(d)
}
