package tui

import (
	"strings"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/stats"
	"github.com/theirongolddev/tanklog/internal/tui/components"
	"github.com/theirongolddev/tanklog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// viewOverview renders the five-period cards and the monthly cost sparkline.
func (a App) viewOverview() string {
	t := theme.Active
	width := a.contentWidth()

	var b strings.Builder

	cards := make([]components.Card, 0, len(a.report))
	for _, r := range a.report {
		economy := stats.AverageEconomy(stats.Totals{Distance: r.Distance, FuelUsed: r.FuelUsed})
		cards = append(cards, components.Card{
			Label: r.Period.String(),
			Value: cli.FormatDistance(r.Distance, a.cfg.Units),
			Note: cli.FormatCost(r.FuelCost, a.cfg.Currency) + "  " +
				cli.FormatEconomy(economy, a.cfg.Units),
		})
	}
	// Two rows: three period cards, then two.
	b.WriteString(components.MetricCardRow(cards[:3], width))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(cards[3:], width*2/3))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	costs := make([]float64, 0, len(a.monthly))
	for _, m := range a.monthly {
		costs = append(costs, m.FuelCost)
	}
	b.WriteString(" " + labelStyle.Render("Fuel cost by month  "))
	b.WriteString(cli.RenderSparkline(costs))
	b.WriteString("\n")

	return b.String()
}
