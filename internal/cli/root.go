// Package cli provides command-line interface functionality for the greet tool.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/douhashi/greet/internal/config"
	"github.com/douhashi/greet/pkg/logger"
)

var (
	cfgFile string
	verbose bool
	Version string
	Commit  string
	Date    string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Interactive console greeter",
		Long: `Greet prompts for a name on standard input and prints a greeting.
The ask subcommand reads the name through a fixed-capacity buffer instead,
and demo walks through every reading variant in sequence.`,
		RunE:         runGreet,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newDemoCmd())

	return cmd
}

func Execute(version, commit, date string) error {
	Version = version
	Commit = commit
	Date = date
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(logger.Config{
		Level:  level,
		Output: os.Stderr,
	})

	log := logger.GetLogger()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".greet")
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("Using config file", "path", viper.ConfigFileUsed())
	} else if verbose {
		log.Debug("No config file found", "error", err.Error())
	}
}

// loadConfig loads the effective configuration and applies its log
// settings. The --verbose flag wins over the configured level.
func loadConfig() (*config.Config, error) {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = filepath.Join(".greet", "config.yml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if !verbose {
		logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	}

	return cfg, nil
}
