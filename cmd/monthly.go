package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/stats"

	"github.com/spf13/cobra"
)

var flagYear int

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month-by-month table for one year",
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Year to report (default current)")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}

	year := flagYear
	if year == 0 {
		year = time.Now().Year()
	}

	months := stats.MonthlyReport(v, year)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  —  %d BY MONTH", v.Name, year)))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	costs := make([]float64, 0, len(months))
	for _, m := range months {
		economy := stats.AverageEconomy(stats.Totals{Distance: m.Distance, FuelUsed: m.FuelUsed})
		rows = append(rows, []string{
			cli.FormatMonth(int(m.Month)),
			cli.FormatDistance(m.Distance, cfg.Units),
			cli.FormatVolume(m.FuelUsed, cfg.Units),
			cli.FormatCost(m.FuelCost, cfg.Currency),
			cli.FormatEconomy(economy, cfg.Units),
		})
		costs = append(costs, m.FuelCost)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Distance", "Fuel", "Cost", "Economy"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Cost  %s\n\n", cli.RenderSparkline(costs))
	return nil
}
