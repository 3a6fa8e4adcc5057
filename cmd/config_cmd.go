package cmd

import (
	"fmt"

	"github.com/theirongolddev/tanklog/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ActiveVehicle != "" {
		fmt.Printf("    Active vehicle:   %s\n", cfg.General.ActiveVehicle)
	} else {
		fmt.Println("    Active vehicle:   not set")
	}
	fmt.Printf("    Default previews: %d\n", cfg.General.DefaultPreviews)
	fmt.Printf("    Database:         %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Units]")
	fmt.Printf("    Distance: %s\n", cfg.Units.Distance)
	fmt.Printf("    Volume:   %s\n", cfg.Units.Volume)
	fmt.Printf("    Economy:  %s\n", cfg.Units.Economy)
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Symbol: %s\n", cfg.Currency.Symbol)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `tanklog setup` to reconfigure.")
	return nil
}
