package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
	"github.com/belugatempo-dot/census-dashboard/internal/prefs"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Show or change the display language",
}

var langGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current display language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreference(cmd.Context(), func(ctx context.Context, p *prefs.Preference) error {
			lang, err := p.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang)
			return nil
		})
	},
}

var langSetCmd = &cobra.Command{
	Use:   "set <tag>",
	Short: "Set the display language (en, zh, or a BCP-47 tag such as zh-CN)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := i18n.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		return withPreference(cmd.Context(), func(ctx context.Context, p *prefs.Preference) error {
			if err := p.Set(ctx, lang); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang)
			return nil
		})
	},
}

var langToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between English and Chinese",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreference(cmd.Context(), func(ctx context.Context, p *prefs.Preference) error {
			lang, err := p.Toggle(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang)
			return nil
		})
	},
}

// withPreference opens the configured preference store for the duration of fn.
func withPreference(ctx context.Context, fn func(context.Context, *prefs.Preference) error) error {
	if err := cfg.Validate("lang"); err != nil {
		return err
	}
	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck
	return fn(ctx, prefs.New(st))
}

func init() {
	langCmd.AddCommand(langGetCmd, langSetCmd, langToggleCmd)
	rootCmd.AddCommand(langCmd)
}
