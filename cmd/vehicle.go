package cmd

import (
	"fmt"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagVehicleMake  string
	flagVehicleModel string
	flagVehicleYes   bool
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Manage vehicles",
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleAdd,
}

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vehicles",
	RunE:  runVehicleList,
}

var vehicleUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleUse,
}

var vehicleRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a vehicle and its entire history",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleRemove,
}

func init() {
	vehicleAddCmd.Flags().StringVar(&flagVehicleMake, "make", "", "Manufacturer")
	vehicleAddCmd.Flags().StringVar(&flagVehicleModel, "model", "", "Model")
	vehicleRemoveCmd.Flags().BoolVarP(&flagVehicleYes, "yes", "y", false, "Skip confirmation")

	vehicleCmd.AddCommand(vehicleAddCmd, vehicleListCmd, vehicleUseCmd, vehicleRemoveCmd)
	rootCmd.AddCommand(vehicleCmd)
}

func runVehicleAdd(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	name := args[0]
	if _, err := s.CreateVehicle(name, flagVehicleMake, flagVehicleModel); err != nil {
		return err
	}

	// First vehicle becomes active automatically.
	if cfg.General.ActiveVehicle == "" {
		cfg.General.ActiveVehicle = name
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	fmt.Printf("  Added vehicle %q.\n", name)
	return nil
}

func runVehicleList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	vehicles, err := s.Vehicles()
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		fmt.Println("\n  No vehicles yet. Add one with `tanklog vehicle add <name>`.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		active := ""
		if v.Name == cfg.General.ActiveVehicle {
			active = "active"
		}
		rows = append(rows, []string{v.Name, v.Make, v.Model, active})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Make", "Model", ""},
		Rows:    rows,
	}))
	return nil
}

func runVehicleUse(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	v, err := s.VehicleByName(args[0])
	if err != nil {
		return err
	}

	cfg.General.ActiveVehicle = v.Name
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Active vehicle is now %q.\n", v.Name)
	return nil
}

func runVehicleRemove(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	v, err := s.VehicleByName(args[0])
	if err != nil {
		return err
	}

	if !flagVehicleYes {
		return fmt.Errorf("deleting %q discards all its readings, refuels, and maintenance — re-run with --yes", v.Name)
	}

	if err := s.DeleteVehicle(v.ID); err != nil {
		return err
	}

	if cfg.General.ActiveVehicle == v.Name {
		cfg.General.ActiveVehicle = ""
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	fmt.Printf("  Removed %q and its history.\n", v.Name)
	return nil
}
