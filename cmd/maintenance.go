package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMaintType     string
	flagMaintCost     float64
	flagMaintFree     bool
	flagMaintNotes    string
	flagMaintOdometer int64
	flagMaintDate     string
)

var maintenanceCmd = &cobra.Command{
	Use:     "maintenance",
	Aliases: []string{"maint"},
	Short:   "Record and inspect maintenance events",
}

var maintenanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a maintenance event",
	RunE:  runMaintenanceAdd,
}

var maintenanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List maintenance events, newest first",
	RunE:  runMaintenanceList,
}

func init() {
	types := make([]string, len(model.MaintenanceTypes))
	for i, t := range model.MaintenanceTypes {
		types[i] = string(t)
	}

	maintenanceAddCmd.Flags().StringVarP(&flagMaintType, "type", "t", "", "Category: "+strings.Join(types, ", "))
	maintenanceAddCmd.Flags().Float64VarP(&flagMaintCost, "cost", "c", 0, "Cost")
	maintenanceAddCmd.Flags().BoolVar(&flagMaintFree, "free", false, "Free of charge (warranty, goodwill)")
	maintenanceAddCmd.Flags().StringVarP(&flagMaintNotes, "notes", "n", "", "Free-form notes")
	maintenanceAddCmd.Flags().Int64VarP(&flagMaintOdometer, "odometer", "o", -1, "Odometer value at service time")
	maintenanceAddCmd.Flags().StringVar(&flagMaintDate, "date", "", "When (YYYY-MM-DD or YYYY-MM-DD HH:MM, default now)")
	_ = maintenanceAddCmd.MarkFlagRequired("type")

	maintenanceCmd.AddCommand(maintenanceAddCmd, maintenanceListCmd)
	rootCmd.AddCommand(maintenanceCmd)
}

func runMaintenanceAdd(_ *cobra.Command, _ []string) error {
	if !model.ValidMaintenanceType(flagMaintType) {
		return fmt.Errorf("unknown maintenance type %q", flagMaintType)
	}
	when, err := parseWhen(flagMaintDate)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	vehicle, err := resolveVehicle(s, cfg)
	if err != nil {
		return err
	}

	event := model.MaintenanceEvent{
		Type:         model.MaintenanceType(flagMaintType),
		Cost:         flagMaintCost,
		FreeOfCharge: flagMaintFree,
		Notes:        flagMaintNotes,
		RecordedAt:   when,
	}
	if event.FreeOfCharge {
		event.Cost = 0
	}

	var odometerID *int64
	if flagMaintOdometer >= 0 {
		id, err := s.AddOdometerReading(vehicle.ID, flagMaintOdometer, when)
		if err != nil {
			return err
		}
		odometerID = &id
	}

	if _, err := s.AddMaintenance(vehicle.ID, event, odometerID); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Recorded %s @ %s\n", event.Type, when.Format("2006-01-02"))
	}
	return nil
}

func runMaintenanceList(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}
	if len(v.Maintenance) == 0 {
		fmt.Println("\n  No maintenance events yet.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(v.Maintenance))
	for i := len(v.Maintenance) - 1; i >= 0; i-- {
		m := v.Maintenance[i]
		cost := cli.FormatCost(m.Cost, cfg.Currency)
		if m.FreeOfCharge {
			cost = "free"
		}
		odo := "—"
		if m.Odometer != nil {
			odo = cli.FormatNumber(m.Odometer.Value)
		}
		rows = append(rows, []string{
			m.RecordedAt.Format("2006-01-02"),
			string(m.Type),
			cost,
			odo,
			m.Notes,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   v.Name + " — maintenance",
		Headers: []string{"Date", "Type", "Cost", "Odometer", "Notes"},
		Rows:    rows,
	}))
	return nil
}
