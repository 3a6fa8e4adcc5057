package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagOdoValue int64
	flagOdoDate  string
)

var odometerCmd = &cobra.Command{
	Use:   "odometer",
	Short: "Record and inspect odometer readings",
}

var odometerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an odometer reading",
	RunE:  runOdometerAdd,
}

var odometerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List odometer readings, newest first",
	RunE:  runOdometerList,
}

func init() {
	odometerAddCmd.Flags().Int64VarP(&flagOdoValue, "value", "v", -1, "Odometer value (required)")
	odometerAddCmd.Flags().StringVar(&flagOdoDate, "date", "", "When (YYYY-MM-DD or YYYY-MM-DD HH:MM, default now)")
	_ = odometerAddCmd.MarkFlagRequired("value")

	odometerCmd.AddCommand(odometerAddCmd, odometerListCmd)
	rootCmd.AddCommand(odometerCmd)
}

func runOdometerAdd(_ *cobra.Command, _ []string) error {
	if flagOdoValue < 0 {
		return fmt.Errorf("odometer value must be non-negative")
	}
	when, err := parseWhen(flagOdoDate)
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

	if _, err := s.AddOdometerReading(vehicle.ID, flagOdoValue, when); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Recorded %s %s @ %s\n",
			cli.FormatNumber(flagOdoValue), cfg.Units.Distance, when.Format("2006-01-02 15:04"))
	}
	return nil
}

func runOdometerList(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}
	if len(v.Odometer) == 0 {
		fmt.Println("\n  No odometer readings yet.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(v.Odometer))
	for i := len(v.Odometer) - 1; i >= 0; i-- {
		r := v.Odometer[i]
		rows = append(rows, []string{
			r.RecordedAt.Format("2006-01-02 15:04"),
			cli.FormatDistance(r.Value, cfg.Units),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   v.Name + " — odometer readings",
		Headers: []string{"Date", "Value"},
		Rows:    rows,
	}))
	return nil
}
