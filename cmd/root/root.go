// Package root contains the root command for the application
package root

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eqtools/eq-ynab/internal/config"
	"eqtools/eq-ynab/internal/eqparser"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "eq-ynab",
		Short: "A CLI tool to convert EQ Bank CSV exports to the YNAB import format.",
		Long: `eq-ynab converts EQ Bank transaction CSV exports into the CSV format
the YNAB budgeting tool imports, splitting signed amounts into Outflow and
Inflow columns.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to eq-ynab!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = configureLogging()

			eqparser.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string
)

// configureLogging applies the viper config (defaults, config.yaml,
// environment) to the shared logger.
func configureLogging() *logrus.Logger {
	cfg, err := config.InitializeConfig()
	if err != nil {
		config.Logger.Warnf("Failed to initialize config, using environment defaults: %v", err)
		return config.ConfigureLogging()
	}

	logger := config.Logger

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(cfg.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
