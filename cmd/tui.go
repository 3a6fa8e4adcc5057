package cmd

import (
	"fmt"

	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/tui"
	"github.com/theirongolddev/tanklog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so styling produces ANSI codes even when
	// lipgloss would otherwise fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	vehicle, err := resolveVehicle(s, cfg)
	_ = s.Close()
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, dbPath(cfg), vehicle.ID)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
