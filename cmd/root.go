package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/config"
	"github.com/belugatempo-dot/census-dashboard/internal/demographics"
	"github.com/belugatempo-dot/census-dashboard/internal/enrich"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "census-dashboard",
	Short: "U.S. Census dashboard data service",
	Long:  "Fetches state population, economic, age and race statistics from the Census Data API and serves them as one dashboard payload.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if err := enrich.ValidateAbbreviations(); err != nil {
			return fmt.Errorf("state abbreviations: %w", err)
		}
		if err := demographics.ValidateAgeBuckets(); err != nil {
			return fmt.Errorf("age buckets: %w", err)
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
