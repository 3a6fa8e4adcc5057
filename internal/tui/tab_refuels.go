package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// viewRefuels renders recent per-refuel economy plus the open consumption
// group, if any.
func (a App) viewRefuels() string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder

	if len(a.previews) == 0 {
		b.WriteString(dimStyle.Render("  No refuels recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-12s %10s %10s %14s", "Date", "Volume", "Cost", "Economy")))
	b.WriteString("\n")
	for _, p := range a.previews {
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-12s %10s %10s %14s",
			p.RecordedAt.Format("2006-01-02"),
			cli.FormatVolume(p.Volume, a.cfg.Units),
			cli.FormatCost(p.Cost, a.cfg.Currency),
			cli.FormatEconomy(p.Economy, a.cfg.Units),
		)))
		b.WriteString("\n")
	}

	if n := len(a.groups); n > 0 && a.groups[n-1].Open {
		open := a.groups[n-1]
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"  %d partial fill(s) (%s) waiting for a full fill to close the group",
			len(open.Refuels), cli.FormatVolume(open.Volume, a.cfg.Units))))
		b.WriteString("\n")
	}

	return b.String()
}
