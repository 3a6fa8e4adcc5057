package cmd

import (
	"fmt"

	"github.com/theirongolddev/tanklog/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	var (
		vehicleName  string
		vehicleMake  string
		vehicleModel string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vehicle name").
				Description("A short nickname, e.g. \"daily\" or \"the van\"").
				Value(&vehicleName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().Title("Make (optional)").Value(&vehicleMake),
			huh.NewInput().Title("Model (optional)").Value(&vehicleModel),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Distance unit").
				Options(
					huh.NewOption("Kilometres", "km"),
					huh.NewOption("Miles", "mi"),
				).
				Value(&cfg.Units.Distance),
			huh.NewSelect[string]().
				Title("Volume unit").
				Options(
					huh.NewOption("Litres", "L"),
					huh.NewOption("Gallons", "gal"),
				).
				Value(&cfg.Units.Volume),
			huh.NewSelect[string]().
				Title("Economy display").
				Options(
					huh.NewOption("Distance per volume (km/L)", config.EconomyPerVolume),
					huh.NewOption("Volume per 100 distance (L/100km)", config.EconomyPer100),
				).
				Value(&cfg.Units.Economy),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.Currency.Symbol),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	// Reuse an existing vehicle of the same name rather than duplicating it.
	if _, err := s.VehicleByName(vehicleName); err != nil {
		if _, err := s.CreateVehicle(vehicleName, vehicleMake, vehicleModel); err != nil {
			return err
		}
	}
	cfg.General.ActiveVehicle = vehicleName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Active vehicle: %s\n", vehicleName)
	fmt.Println("  Record a fill-up with `tanklog refuel add --volume 40 --cost 60 --odometer 12345`.")
	fmt.Println()
	return nil
}
