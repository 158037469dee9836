package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tatianab/deadly-dice/internal/narrator"
	"github.com/tatianab/deadly-dice/internal/tui"
	"go.uber.org/zap"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal (default)",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, eng, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := tui.Options{
		RollDelay:     cfg.RollDelay,
		FrameInterval: cfg.FrameInterval,
	}
	if cfg.GeminiAPIKey != "" {
		narr, err := narrator.New(cmd.Context(), cfg.GeminiAPIKey, cfg.NarratorModel)
		if err != nil {
			// The game is playable without epilogues.
			logger.Warn("narrator disabled", zap.Error(err))
		} else {
			defer narr.Close()
			opts.Narrator = narr
		}
	}

	if err := tui.Run(eng, opts); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
