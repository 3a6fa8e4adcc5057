// Package tui provides the interactive Bubble Tea dashboard for tanklog.
package tui

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/model"
	"github.com/theirongolddev/tanklog/internal/stats"
	"github.com/theirongolddev/tanklog/internal/store"
	"github.com/theirongolddev/tanklog/internal/tui/components"
	"github.com/theirongolddev/tanklog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the vehicle snapshot has been materialized.
type DataLoadedMsg struct {
	Vehicle *model.Vehicle
	Err     error
}

// App is the root Bubble Tea model.
type App struct {
	cfg       config.Config
	dbPath    string
	vehicleID int64

	vehicle *model.Vehicle
	loaded  bool
	loadErr error

	// Pre-computed on load
	report   []model.PeriodStats
	previews []model.EconomyPreview
	groups   []stats.GroupEconomy
	monthly  []model.MonthlyStats

	width     int
	height    int
	activeTab int
	spinner   spinner.Model
}

// NewApp builds the dashboard for one vehicle.
func NewApp(cfg config.Config, dbPath string, vehicleID int64) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		cfg:       cfg,
		dbPath:    dbPath,
		vehicleID: vehicleID,
		spinner:   sp,
	}
}

// Init starts the spinner and kicks off the snapshot load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(a.dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer func() { _ = s.Close() }()

		v, err := s.LoadVehicle(a.vehicleID)
		return DataLoadedMsg{Vehicle: v, Err: err}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.vehicle = msg.Vehicle
		if msg.Err == nil {
			now := time.Now()
			a.report = stats.Report(a.vehicle, now)
			a.previews = stats.LatestEconomyPreviews(a.vehicle, 15)
			a.groups = stats.GroupEconomies(a.vehicle)
			a.monthly = stats.MonthlyReport(a.vehicle, now.Year())
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	return a, nil
}

// View renders the dashboard.
func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return fmt.Sprintf("\n\n  %s Loading records...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n\n  " + errStyle.Render(fmt.Sprintf("Load failed: %v", a.loadErr)) + "\n\n  Press q to quit.\n"
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	header := " " + titleStyle.Render(a.vehicle.Name)
	if a.vehicle.Make != "" || a.vehicle.Model != "" {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		header += muted.Render(fmt.Sprintf("  %s %s", a.vehicle.Make, a.vehicle.Model))
	}

	var body string
	switch a.activeTab {
	case 0:
		body = a.viewOverview()
	case 1:
		body = a.viewRefuels()
	case 2:
		body = a.viewMaintenance()
	}

	status := components.RenderStatusBar(a.width,
		fmt.Sprintf("%d refuels, %d readings ", len(a.vehicle.Refuels), len(a.vehicle.Odometer)))

	return "\n" + header + "\n\n" +
		components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" + status
}

func (a App) contentWidth() int {
	w := a.width - 2
	if w < 60 {
		w = 60
	}
	if w > 120 {
		w = 120
	}
	return w
}
