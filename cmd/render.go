package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rotisserie/eris"
	"golang.org/x/text/message"

	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

var (
	colorPrimary = lipgloss.Color("#3B82F6")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeDashboard prints d as indented JSON or as terminal tables.
func writeDashboard(w io.Writer, d *model.Dashboard, format string, lang i18n.Language) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(d), "encode dashboard")
	case "table":
		_, err := io.WriteString(w, renderDashboard(d, lang))
		return eris.Wrap(err, "write dashboard")
	default:
		return eris.Errorf("unsupported format %q (valid: json, table)", format)
	}
}

// renderDashboard lays out the four datasets as lipgloss tables.
func renderDashboard(d *model.Dashboard, lang i18n.Language) string {
	p := i18n.Printer(lang)
	t := func(key string) string { return i18n.T(lang, key) }

	var sb strings.Builder
	section := func(title string, tbl *table.Table) {
		sb.WriteString(titleStyle.Render(title))
		sb.WriteString("\n")
		sb.WriteString(tbl.Render())
		sb.WriteString("\n\n")
	}

	states := newTable(t(i18n.KeyState), t(i18n.KeyPopulation), t(i18n.KeyGrowthRate),
		t(i18n.KeyMedianIncome), t(i18n.KeyUnemployment))
	for _, s := range d.States {
		states.Row(
			fmt.Sprintf("%s (%s)", s.State, s.Abbr),
			formatPopulation(p, s.Population),
			formatPercent(s.Growth),
			formatCurrency(p, s.MedianIncome),
			formatPercent(s.Unemployment),
		)
	}
	section(t(i18n.KeyStateRanking), states)

	age := newTable(t(i18n.KeyAgeGroup), t(i18n.KeyMale), t(i18n.KeyFemale), t(i18n.KeyTotal))
	for _, b := range d.AgeDistribution {
		age.Row(b.Age, formatDecimal(b.Male), formatDecimal(b.Female), formatDecimal(b.Total))
	}
	section(t(i18n.KeyAgeDistribution), age)

	race := newTable(t(i18n.KeyCategory), t(i18n.KeyPercentage))
	for _, c := range d.RaceComposition {
		race.Row(i18n.RaceLabel(lang, c.Key), formatPercent(c.Value))
	}
	section(t(i18n.KeyRaceComposition), race)

	trend := newTable(t(i18n.KeyYear), t(i18n.KeyPopulation), t(i18n.KeyUrban))
	for _, h := range d.PopulationTrend {
		trend.Row(strconv.Itoa(h.Year), formatDecimal(h.Population), formatDecimal(h.Urban))
	}
	section(t(i18n.KeyPopulationTrend), trend)

	return sb.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// printUnavailable writes the localized failure notice.
func printUnavailable(w io.Writer, lang i18n.Language) {
	msg := i18n.UnavailableMessage(lang)
	fmt.Fprintln(w, errorStyle.Render(msg.Title))
	fmt.Fprintln(w, msg.Message)
}

// formatPopulation renders counts of a million or more as "39.5M" and
// smaller counts with locale grouping.
func formatPopulation(p *message.Printer, n int64) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
	return p.Sprintf("%d", n)
}

func formatCurrency(p *message.Printer, n int64) string {
	return "$" + p.Sprintf("%d", n)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
