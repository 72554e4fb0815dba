// Package root contains the root command for the application.
package root

import (
	"fjacquet/fincat/internal/common"
	"fjacquet/fincat/internal/config"
	"fjacquet/fincat/internal/logging"
	"fjacquet/fincat/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration loaded before any command runs
	Cfg *config.Config

	// CategoriesFile is the rule store location, overridable per invocation
	CategoriesFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fincat",
		Short: "A CLI tool to categorize bank transaction feeds and learn from corrections.",
		Long: `fincat categorizes bank transaction CSV feeds using a keyword rule store.
Manual corrections feed back into the store, so the next classification
run reflects what it learned. It also produces per-category totals,
time series, and filtered views for reporting.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fincat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			common.SetLogger(Log)

			if delim := []rune(cfg.CSV.Delimiter); len(delim) == 1 {
				common.SetDelimiter(delim[0])
			}

			if CategoriesFile == "" {
				CategoriesFile = cfg.Data.CategoriesFile
			}
		},
	}
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&CategoriesFile, "categories", "C", "",
		"Rule store file (default from configuration)")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OpenStore loads the rule store from the configured location.
func OpenStore() (*store.RuleStore, error) {
	return store.Load(CategoriesFile, Logger())
}
