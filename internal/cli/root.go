// Package cli wires configuration, logging and the game components into the
// deadly-dice command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tatianab/deadly-dice/internal/config"
	"github.com/tatianab/deadly-dice/internal/engine"
	"github.com/tatianab/deadly-dice/internal/logging"
	"go.uber.org/zap"
)

var (
	configPath string
	seedFlag   int64
	strictFlag bool
)

var rootCmd = &cobra.Command{
	Use:          "deadly-dice",
	Short:        "Roll your way down a cursed track",
	Long:         `deadly-dice is a terminal dice RPG: roll to advance along a track of 200 to 300 cells, fight monsters and drink potions until you reach the end or fall.`,
	RunE:         runPlay,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "deadly-dice.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "panic on engine precondition violations")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and builds the logger and
// engine every command needs.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *engine.Engine, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strictFlag
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return nil, nil, nil, err
	}

	eng := engine.NewEngine(engine.NewSource(cfg.Seed),
		engine.WithLogger(logger),
		engine.WithStrict(cfg.Strict))
	return cfg, logger, eng, nil
}
