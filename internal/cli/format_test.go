package cli

import (
	"testing"

	"github.com/theirongolddev/tanklog/internal/config"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-54321, "-54,321"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatEconomy(t *testing.T) {
	perVolume := config.UnitsConfig{Distance: "km", Volume: "L", Economy: config.EconomyPerVolume}
	per100 := config.UnitsConfig{Distance: "km", Volume: "L", Economy: config.EconomyPer100}

	if got := FormatEconomy(12.5, perVolume); got != "12.5 km/L" {
		t.Errorf("per-volume = %q", got)
	}
	if got := FormatEconomy(12.5, per100); got != "8.0 L/100km" {
		t.Errorf("per-100 = %q", got)
	}
	if got := FormatEconomy(0, perVolume); got != "—" {
		t.Errorf("undefined economy = %q, want dash", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth(1); got != "Jan" {
		t.Errorf("FormatMonth(1) = %q", got)
	}
	if got := FormatMonth(12); got != "Dec" {
		t.Errorf("FormatMonth(12) = %q", got)
	}
	if got := FormatMonth(13); got != "???" {
		t.Errorf("FormatMonth(13) = %q", got)
	}
}
