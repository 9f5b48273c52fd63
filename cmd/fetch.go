package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	fetchFormat string
	fetchTop    int
	fetchLang   string
)

var fetchCmd = &cobra.Command{
	Use:          "fetch",
	Short:        "Run one fetch cycle and print the dashboard",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fetchFormat != "json" && fetchFormat != "table" {
			return eris.Errorf("unsupported format %q (valid: json, table)", fetchFormat)
		}
		ctx := cmd.Context()

		env, err := initDashboard(ctx, "fetch", fetchTop)
		if err != nil {
			return err
		}
		defer env.Close()

		lang, err := resolveLanguage(ctx, env.Prefs, fetchLang)
		if err != nil {
			return err
		}

		d, err := env.Dashboard.Load(ctx)
		if err != nil {
			printUnavailable(cmd.ErrOrStderr(), lang)
			return err
		}

		return writeDashboard(cmd.OutOrStdout(), d, fetchFormat, lang)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "json", "output format: json or table")
	fetchCmd.Flags().IntVar(&fetchTop, "top", 0, "number of states to enrich (default from config)")
	fetchCmd.Flags().StringVar(&fetchLang, "lang", "", "display language override (en, zh)")
	rootCmd.AddCommand(fetchCmd)
}
