package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	version  = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "liftover",
	Short: "Liftover — one-shot MySQL to PostgreSQL data migration",
	Long: `Liftover bulk-transfers the legacy workshop database (MySQL) into the
new PostgreSQL schema, minting a UUID for every row and remapping
foreign keys from the legacy auto-increment ids.

The run is single-shot and not resumable: identifier mappings live only
in process memory. Running it twice against the same target duplicates
every row under fresh ids.`,
}

func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.liftover/liftover.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
