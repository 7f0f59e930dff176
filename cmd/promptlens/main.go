package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptlens/internal/config"
	"promptlens/internal/logging"
)

var (
	// Global flags
	verbose bool
	cfgFile string

	// Loaded in PersistentPreRunE, available to every subcommand.
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptlens",
	Short: "promptlens - extract what prompt variants have in common",
	Long: `promptlens compares a set of free-form prompt texts and extracts the
content they share, so shared boilerplate can be told apart from
variant-specific phrasing.

Texts are compared word-by-word inside sentences; when no whole words are
shared, a character-level fallback still surfaces common tokens (IDs,
symbols). Comparison never fails: texts that share nothing simply yield an
empty result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return logging.Init(logging.Options{
			Level:      cfg.Logging.Level,
			DebugMode:  cfg.Logging.DebugMode,
			Categories: cfg.Logging.Categories,
		}, verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default .promptlens.yaml)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
