package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/appdir-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "appdir-cli",
	Short: "Application directory enrichment toolkit",
	Long:  "Builds and patches the application directory workbook: infers vendor names from URLs, validates them against live homepage brand indicators, retries failed fetches, and classifies AI characteristics from descriptions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
