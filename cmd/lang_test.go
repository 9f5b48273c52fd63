package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belugatempo-dot/census-dashboard/internal/prefs"
)

// runLang invokes a lang subcommand's RunE directly, skipping the root
// pre-run that would load config from disk.
func runLang(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetContext(context.Background())
	t.Cleanup(func() { c.SetOut(nil) })
	require.NoError(t, c.RunE(c, args))
	return strings.TrimSpace(out.String())
}

func TestLangCommands_PersistAcrossInvocations(t *testing.T) {
	useConfig(t, testConfig(t, "https://api.census.gov/data"))

	assert.Equal(t, "en", runLang(t, langGetCmd))
	assert.Equal(t, "zh", runLang(t, langSetCmd, "zh-Hans"))
	assert.Equal(t, "zh", runLang(t, langGetCmd))
	assert.Equal(t, "en", runLang(t, langToggleCmd))
	assert.Equal(t, "en", runLang(t, langGetCmd))
}

func TestLangSet_Invalid(t *testing.T) {
	useConfig(t, testConfig(t, "https://api.census.gov/data"))

	langSetCmd.SetContext(context.Background())
	err := langSetCmd.RunE(langSetCmd, []string{"fr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestWithPreference_BadConfig(t *testing.T) {
	c := testConfig(t, "https://api.census.gov/data")
	c.Prefs.Driver = "redis"
	useConfig(t, c)

	err := withPreference(context.Background(), func(context.Context, *prefs.Preference) error {
		t.Fatal("fn must not run")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefs.driver")
}

