package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-unithtml/internal/prompt"
	"github.com/goliatone/go-unithtml/pkg/config"
)

func newPromptCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a unit rendering interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := prompt.Session{
				Driver: app.promptDriver(),
				Styles: app.styles.List(),
				Style:  app.cfg.Style,
				Validate: func(expr string) error {
					_, err := app.units.Parse(expr)
					return err
				},
			}

			answers, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}
			app.logger.Debug("prompt answers",
				zap.String("expression", answers.Expression),
				zap.String("style", answers.Style),
				zap.Bool("paren", answers.Paren),
			)

			paren := answers.Paren
			cfg := app.cfg.Merge(config.Config{Style: answers.Style, Paren: &paren})
			f, err := cfg.Formatter(app.styles)
			if err != nil {
				return err
			}
			rendered, err := app.render(f, answers.Expression, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
