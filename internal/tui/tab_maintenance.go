package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// viewMaintenance renders the maintenance log, newest first.
func (a App) viewMaintenance() string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	events := a.vehicle.Maintenance
	if len(events) == 0 {
		return dimStyle.Render("  No maintenance events yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-12s %-8s %10s  %s", "Date", "Type", "Cost", "Notes")))
	b.WriteString("\n")

	var total float64
	for i := len(events) - 1; i >= 0; i-- {
		m := events[i]
		cost := cli.FormatCost(m.Cost, a.cfg.Currency)
		if m.FreeOfCharge {
			cost = "free"
		} else {
			total += m.Cost
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-12s %-8s %10s  %s",
			m.RecordedAt.Format("2006-01-02"), m.Type, cost, m.Notes)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Total spent: %s", cli.FormatCost(total, a.cfg.Currency))))
	b.WriteString("\n")

	return b.String()
}
