package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/stats"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Period statistics: this month, last month, year to date, all time, projected year",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}

	rows := stats.Report(v, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  —  USAGE STATISTICS", v.Name)))
	fmt.Println()

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		economy := stats.AverageEconomy(stats.Totals{
			Distance: r.Distance, FuelUsed: r.FuelUsed, FuelCost: r.FuelCost,
		})
		tableRows = append(tableRows, []string{
			r.Period.String(),
			cli.FormatDistance(r.Distance, cfg.Units),
			cli.FormatVolume(r.FuelUsed, cfg.Units),
			cli.FormatCost(r.FuelCost, cfg.Currency),
			cli.FormatEconomy(economy, cfg.Units),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Period", "Distance", "Fuel", "Cost", "Economy"},
		Rows:    tableRows,
	}))

	return nil
}
