// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/tanklog/internal/config"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDistance renders a distance with its configured unit label.
func FormatDistance(n int64, units config.UnitsConfig) string {
	return FormatNumber(n) + " " + units.Distance
}

// FormatVolume renders a fuel volume with its configured unit label.
func FormatVolume(v float64, units config.UnitsConfig) string {
	return fmt.Sprintf("%.1f %s", v, units.Volume)
}

// FormatCost renders a monetary amount with the configured symbol.
func FormatCost(cost float64, currency config.CurrencyConfig) string {
	if cost >= 1000 {
		return currency.Symbol + FormatNumber(int64(cost+0.5))
	}
	return fmt.Sprintf("%s%.2f", currency.Symbol, cost)
}

// FormatEconomy renders an economy figure (engine output is distance per
// fuel unit) in the configured display mode. An undefined figure (0) renders
// as a dash.
func FormatEconomy(econ float64, units config.UnitsConfig) string {
	if econ <= 0 {
		return "—"
	}
	if units.Economy == config.EconomyPer100 {
		return fmt.Sprintf("%.1f %s/100%s", 100/econ, units.Volume, units.Distance)
	}
	return fmt.Sprintf("%.1f %s/%s", econ, units.Distance, units.Volume)
}

// FormatMonth returns the 3-letter month abbreviation, 1-based.
func FormatMonth(month int) string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if month >= 1 && month <= 12 {
		return months[month-1]
	}
	return "???"
}
