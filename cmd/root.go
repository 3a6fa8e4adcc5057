// Package cmd implements the tanklog CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/model"
	"github.com/theirongolddev/tanklog/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagVehicle string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tanklog",
	Short: "Personal vehicle fuel and maintenance tracker",
	Long:  "Track refuels, odometer readings, and maintenance; see period statistics and fuel economy.",
	RunE:  runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data home)")
	rootCmd.PersistentFlags().StringVar(&flagVehicle, "vehicle", "", "Vehicle name (default the active vehicle)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dbPath resolves the database location: flag, then config, then default.
func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir + "/tanklog.db"
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir + "/tanklog.db"
	}
	return store.DefaultPath()
}

// openStore opens the record store using the resolved data directory.
func openStore(cfg config.Config) (*store.Store, error) {
	return store.Open(dbPath(cfg))
}

// resolveVehicle finds the vehicle named by --vehicle, or the configured
// active vehicle, or the only vehicle in the store.
func resolveVehicle(s *store.Store, cfg config.Config) (model.Vehicle, error) {
	name := flagVehicle
	if name == "" {
		name = cfg.General.ActiveVehicle
	}
	if name != "" {
		return s.VehicleByName(name)
	}

	vehicles, err := s.Vehicles()
	if err != nil {
		return model.Vehicle{}, err
	}
	switch len(vehicles) {
	case 0:
		return model.Vehicle{}, fmt.Errorf("no vehicles yet — run `tanklog setup` or `tanklog vehicle add`")
	case 1:
		return vehicles[0], nil
	default:
		return model.Vehicle{}, fmt.Errorf("multiple vehicles — pick one with --vehicle or `tanklog vehicle use`")
	}
}

// loadSnapshot is the shared data path: open the store, resolve the vehicle,
// and materialize its full history.
func loadSnapshot() (*model.Vehicle, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	s, err := openStore(cfg)
	if err != nil {
		return nil, cfg, err
	}
	defer func() { _ = s.Close() }()

	header, err := resolveVehicle(s, cfg)
	if err != nil {
		return nil, cfg, err
	}

	v, err := s.LoadVehicle(header.ID)
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %s: %d refuels, %d readings, %d maintenance events\n",
			v.Name, len(v.Refuels), len(v.Odometer), len(v.Maintenance))
	}
	return v, cfg, nil
}

// parseWhen parses a --date flag value ("2006-01-02" or "2006-01-02 15:04"),
// defaulting to now when empty.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}
