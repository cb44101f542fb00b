package cli

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mannwallet/internal/alerts"
	"mannwallet/internal/analytics"
	"mannwallet/internal/calendar"
	"mannwallet/internal/config"
	"mannwallet/internal/engine"
	"mannwallet/internal/logging"
	"mannwallet/internal/notify"
	"mannwallet/internal/store"
)

// Version information
const (
	Version   = "0.3.0"
	BuildDate = "2026-08-01"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    store.ExpenseStore
	Calendar *calendar.StaticProvider
	Engine   *engine.Engine
	Notifier notify.Notifier
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	dbPath := filepath.Join(config.DefaultConfigDir(), "mannwallet.db")
	expenseStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, falling back to in-memory records")
		app.Store = store.NewMemoryStore()
	} else {
		app.Store = expenseStore
		logger.Debug().Str("path", dbPath).Msg("SQLite store initialized")
	}

	app.Calendar = calendar.NewStaticProvider()
	app.Engine = engine.New(engine.Options{
		Expenses: app.Store,
		Calendar: app.Calendar,
		InsightCfg: analytics.InsightConfig{
			EmotionalSpendThreshold: cfg.Analytics.EmotionalSpendThreshold,
			Locale:                  cfg.Analytics.Locale,
		},
		AlertCfg: alerts.Config{LookaheadDays: cfg.Alerts.LookaheadDays},
		Logger:   logger,
	})
	app.Notifier = notify.NewMultiNotifier(cfg.Notifications, logger)

	rootCmd := &cobra.Command{
		Use:   "mannwallet",
		Short: "MannWallet - emotional expense analytics CLI",
		Long: `MannWallet tracks what you spend and how you felt while spending it.

It aggregates expenses by emotion, category and weekday, surfaces insights
when emotional spending crosses thresholds, and predicts risky spending days
from recent patterns and the festival calendar.

Use 'mannwallet help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/mannwallet)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addExpenseCommands(rootCmd, app)
	addAnalysisCommands(rootCmd, app)
	addAlertCommands(rootCmd, app)
	addServeCommand(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("MannWallet v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Analytics")
	output.Printf("  Emotional Threshold: %.0f%%\n", cfg.Analytics.EmotionalSpendThreshold*100)
	output.Printf("  Default Window:      %s\n", cfg.Analytics.DefaultWindow)
	output.Printf("  Locale:              %s\n", cfg.Analytics.Locale)
	output.Println()

	output.Bold("Alerts")
	output.Printf("  Lookahead Days: %d\n", cfg.Alerts.LookaheadDays)
	output.Println()

	output.Bold("Server")
	output.Printf("  Addr: %s\n", cfg.Server.Addr)
	output.Println()

	output.Bold("Notifications")
	output.Printf("  Enabled: %v\n", cfg.Notifications.Enabled)
	output.Printf("  Level:   %s\n", cfg.Notifications.Level)
	output.Printf("  Webhook: %v\n", cfg.Notifications.Webhook.Enabled)

	return nil
}
