package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-unithtml/internal/prompt"
	"github.com/goliatone/go-unithtml/pkg/config"
	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

// Version is injected from main.
var Version = "dev"

// App carries state shared by every command.
type App struct {
	configPath string
	logLevel   string
	verbose    bool

	logger *zap.Logger
	driver prompt.Driver

	cfg    config.Config
	units  *units.Registry
	styles *markup.Registry
}

// Option configures the App behind the root command.
type Option func(*App)

// WithLogger injects a logger instead of building one from flags.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithPromptDriver overrides the survey driver used by the prompt command.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(a *App) {
		if driver != nil {
			a.driver = driver
		}
	}
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand(options ...Option) *cobra.Command {
	app := &App{logLevel: "warn"}
	for _, opt := range options {
		if opt != nil {
			opt(app)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "unithtml",
		Short: "Render physical unit expressions as HTML",
		Long: `unithtml turns canonical unit strings such as kg*m**2/s**2 into HTML
fragments: exponents become superscripts and multiplication markers become
a configurable glyph.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", app.logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newFormatCommand(app))
	rootCmd.AddCommand(newPromptCommand(app))
	rootCmd.AddCommand(newUnitsCommand(app))
	rootCmd.AddCommand(newStylesCommand(app))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.logger == nil {
		logger, err := newLogger(a.logLevel, a.verbose)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := config.Default()
	if err != nil {
		return err
	}
	if a.configPath != "" {
		fileCfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = cfg.Merge(fileCfg)
		a.logger.Debug("loaded configuration", zap.String("path", a.configPath))
	}
	a.cfg = cfg

	a.units = units.Default.Clone()
	if err := cfg.RegisterUnits(a.units); err != nil {
		return err
	}
	a.styles = markup.DefaultStyles()
	if err := cfg.RegisterStyles(a.styles); err != nil {
		return err
	}

	a.logger.Debug("registries ready",
		zap.Int("units", len(a.units.List())),
		zap.Strings("styles", a.styles.List()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

func (a *App) promptDriver() prompt.Driver {
	if a.driver == nil {
		a.driver = prompt.NewSurveyDriver()
	}
	return a.driver
}
