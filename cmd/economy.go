package cmd

import (
	"fmt"

	"github.com/theirongolddev/tanklog/internal/cli"
	"github.com/theirongolddev/tanklog/internal/config"
	"github.com/theirongolddev/tanklog/internal/model"
	"github.com/theirongolddev/tanklog/internal/stats"

	"github.com/spf13/cobra"
)

var (
	flagLimit   int
	flagGrouped bool
)

var economyCmd = &cobra.Command{
	Use:   "economy",
	Short: "Fuel economy of recent refuels",
	Long: "Per-refuel economy of the most recent fill-ups. With --grouped, partial fills\n" +
		"are chained with the full fill that closes the tank into consumption groups,\n" +
		"each yielding one figure.",
	RunE: runEconomy,
}

func init() {
	economyCmd.Flags().IntVarP(&flagLimit, "limit", "l", 0, "Number of refuels to show (default from config)")
	economyCmd.Flags().BoolVarP(&flagGrouped, "grouped", "g", false, "Show per-consumption-group figures instead")
	rootCmd.AddCommand(economyCmd)
}

func runEconomy(_ *cobra.Command, _ []string) error {
	v, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}

	if len(v.Refuels) == 0 {
		fmt.Println("\n  No refuels recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  —  FUEL ECONOMY", v.Name)))
	fmt.Println()

	if flagGrouped {
		return renderGroups(v, cfg)
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.General.DefaultPreviews
	}

	previews := stats.LatestEconomyPreviews(v, limit)
	rows := make([][]string, 0, len(previews))
	for _, p := range previews {
		rows = append(rows, []string{
			p.RecordedAt.Format("2006-01-02"),
			cli.FormatVolume(p.Volume, cfg.Units),
			cli.FormatCost(p.Cost, cfg.Currency),
			cli.FormatEconomy(p.Economy, cfg.Units),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Volume", "Cost", "Economy"},
		Rows:    rows,
	}))
	return nil
}

func renderGroups(v *model.Vehicle, cfg config.Config) error {
	groups := stats.GroupEconomies(v)

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		first := g.Refuels[0].RecordedAt.Format("2006-01-02")
		last := g.Refuels[len(g.Refuels)-1].RecordedAt.Format("2006-01-02")
		span := first
		if last != first {
			span = first + " → " + last
		}

		state := "closed"
		if g.Open {
			state = "open"
		}

		economy := "—"
		distance := "—"
		if g.Valid {
			economy = cli.FormatEconomy(g.Economy, cfg.Units)
			distance = cli.FormatDistance(g.Distance, cfg.Units)
		}

		rows = append(rows, []string{
			span,
			fmt.Sprintf("%d", len(g.Refuels)),
			cli.FormatVolume(g.Volume, cfg.Units),
			distance,
			economy,
			state,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Group", "Fills", "Volume", "Distance", "Economy", "State"},
		Rows:    rows,
	}))
	return nil
}
