package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tatianab/deadly-dice/internal/sim"
	"go.uber.org/zap"
)

var (
	simGames  int
	simReport string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play sessions headlessly and print aggregate results",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simGames, "games", "n", 100, "number of sessions to play")
	simulateCmd.Flags().StringVar(&simReport, "report", "", "write a YAML report to this file")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", simGames)
	}
	cfg, logger, eng, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := sim.Run(cmd.Context(), eng, simGames)
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}
	report.Seed = cfg.Seed
	logger.Info("simulation finished",
		zap.Int("games", report.Games),
		zap.Int("wins", report.Wins),
		zap.Float64("win_rate", report.WinRate))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games:      %d\n", report.Games)
	fmt.Fprintf(out, "Wins:       %d (%.1f%%)\n", report.Wins, report.WinRate*100)
	fmt.Fprintf(out, "Losses:     %d\n", report.Losses)
	fmt.Fprintf(out, "Avg rolls:  %.1f\n", report.AvgRolls)
	fmt.Fprintf(out, "Avg kills:  %.2f\n", report.AvgKills)
	fmt.Fprintf(out, "Avg loot:   %.2f\n", report.AvgLoot)

	if simReport != "" {
		if err := report.WriteReport(simReport); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", simReport)
	}
	return nil
}
