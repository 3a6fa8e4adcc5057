package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/model"
	"github.com/theirongolddev/tanklog/internal/stats"

	"github.com/spf13/cobra"
)

var (
	flagRefuelVolume   float64
	flagRefuelCost     float64
	flagRefuelOdometer int64
	flagRefuelPartial  bool
	flagRefuelFull     bool
	flagRefuelDate     string
)

var refuelCmd = &cobra.Command{
	Use:   "refuel",
	Short: "Record and inspect refuels",
}

var refuelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a refuel",
	Long: "Records a fill-up. Without --partial or --full the partial-fill flag is\n" +
		"inferred from the vehicle's refuel history; an explicit flag counts as a\n" +
		"manual override that later re-inference will not touch.",
	RunE: runRefuelAdd,
}

var refuelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded refuels, newest first",
	RunE:  runRefuelList,
}

var refuelReclassifyCmd = &cobra.Command{
	Use:   "reclassify",
	Short: "Re-infer partial-fill flags from the full history",
	Long: "Walks all refuels chronologically and re-runs partial-fill inference with\n" +
		"each event judged against the volumes recorded before it. Manual overrides\n" +
		"are left alone.",
	RunE: runRefuelReclassify,
}

func init() {
	refuelAddCmd.Flags().Float64VarP(&flagRefuelVolume, "volume", "v", 0, "Fuel volume (required)")
	refuelAddCmd.Flags().Float64VarP(&flagRefuelCost, "cost", "c", 0, "Total cost")
	refuelAddCmd.Flags().Int64VarP(&flagRefuelOdometer, "odometer", "o", -1, "Odometer value at the pump")
	refuelAddCmd.Flags().BoolVar(&flagRefuelPartial, "partial", false, "Mark as a partial (not-to-full) fill")
	refuelAddCmd.Flags().BoolVar(&flagRefuelFull, "full", false, "Mark as a full fill")
	refuelAddCmd.Flags().StringVar(&flagRefuelDate, "date", "", "When (YYYY-MM-DD or YYYY-MM-DD HH:MM, default now)")
	_ = refuelAddCmd.MarkFlagRequired("volume")

	refuelCmd.AddCommand(refuelAddCmd, refuelListCmd, refuelReclassifyCmd)
	rootCmd.AddCommand(refuelCmd)
}

func runRefuelAdd(_ *cobra.Command, _ []string) error {
	if flagRefuelPartial && flagRefuelFull {
		return fmt.Errorf("--partial and --full are mutually exclusive")
	}
	if flagRefuelVolume <= 0 {
		return fmt.Errorf("volume must be positive")
	}

	when, err := parseWhen(flagRefuelDate)
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

	event := model.RefuelEvent{
		Volume:     flagRefuelVolume,
		Cost:       flagRefuelCost,
		RecordedAt: when,
	}

	switch {
	case flagRefuelPartial:
		event.Partial = true
		event.PartialManual = true
	case flagRefuelFull:
		event.Partial = false
		event.PartialManual = true
	default:
		history, err := s.RefuelVolumes(vehicle.ID)
		if err != nil {
			return err
		}
		event.Partial = stats.IsPartialFill(event.Volume, history)
	}

	var odometerID *int64
	if flagRefuelOdometer >= 0 {
		id, err := s.AddOdometerReading(vehicle.ID, flagRefuelOdometer, when)
		if err != nil {
			return err
		}
		odometerID = &id
	}

	if _, err := s.AddRefuel(vehicle.ID, event, odometerID); err != nil {
		return err
	}

	kind := "full"
	if event.Partial {
		kind = "partial"
	}
	suffix := "(inferred)"
	if event.PartialManual {
		suffix = "(manual)"
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Recorded %.1f @ %s as %s fill %s\n",
			event.Volume, when.Format("2006-01-02 15:04"), kind, suffix)
	}
	return nil
}

func runRefuelList(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}
	if len(v.Refuels) == 0 {
		fmt.Println("\n  No refuels recorded yet.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(v.Refuels))
	for i := len(v.Refuels) - 1; i >= 0; i-- {
		r := v.Refuels[i]
		odo := "—"
		if r.Odometer != nil {
			odo = cli.FormatNumber(r.Odometer.Value)
		}
		fill := "full"
		if r.Partial {
			fill = "partial"
		}
		if r.PartialManual {
			fill += "*"
		}
		rows = append(rows, []string{
			r.RecordedAt.Format("2006-01-02"),
			cli.FormatVolume(r.Volume, cfg.Units),
			cli.FormatCost(r.Cost, cfg.Currency),
			odo,
			fill,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s — refuels (* = manual flag)", v.Name),
		Headers: []string{"Date", "Volume", "Cost", "Odometer", "Fill"},
		Rows:    rows,
	}))
	return nil
}

func runRefuelReclassify(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	header, err := resolveVehicle(s, cfg)
	if err != nil {
		return err
	}
	v, err := s.LoadVehicle(header.ID)
	if err != nil {
		return err
	}

	before := make(map[int64]bool, len(v.Refuels))
	for _, r := range v.Refuels {
		before[r.ID] = r.Partial
	}

	changed := stats.Reclassify(v.Refuels)
	for _, r := range v.Refuels {
		if r.Partial != before[r.ID] {
			if err := s.UpdateRefuelPartial(r.ID, r.Partial, false); err != nil {
				return err
			}
		}
	}

	fmt.Printf("  Reclassified %d of %d refuels.\n", changed, len(v.Refuels))
	return nil
}
