// Package sim plays sessions headlessly and aggregates their outcomes.
package sim

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/deadly-dice/internal/engine"
	"github.com/tatianab/deadly-dice/internal/models"
	"gopkg.in/yaml.v3"
)

// Game is the outcome of one simulated session.
type Game struct {
	BoardLength    int           `yaml:"board_length"`
	Position       int           `yaml:"position"`
	Status         models.Status `yaml:"status"`
	Rolls          int           `yaml:"rolls"`
	HP             int           `yaml:"hp"`
	Attack         int           `yaml:"attack"`
	MonstersKilled int           `yaml:"monsters_killed"`
	TreasuresFound int           `yaml:"treasures_found"`
}

// Report aggregates a batch of simulated sessions.
type Report struct {
	Seed     int64   `yaml:"seed"`
	Games    int     `yaml:"games"`
	Wins     int     `yaml:"wins"`
	Losses   int     `yaml:"losses"`
	WinRate  float64 `yaml:"win_rate"`
	AvgRolls float64 `yaml:"avg_rolls"`
	AvgKills float64 `yaml:"avg_kills"`
	AvgLoot  float64 `yaml:"avg_treasures"`
	Results  []Game  `yaml:"results"`
}

// Run plays games sessions on eng, rolling each until it ends.
func Run(ctx context.Context, eng *engine.Engine, games int) (*Report, error) {
	r := &Report{Games: games}
	var rolls, kills, loot int

	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		eng.StartSession()
		for eng.CanRoll() {
			eng.RollDice()
			// Every accepted roll advances at least one cell.
			if s := eng.Snapshot(); s.DiceRollCount > s.BoardLength {
				return nil, fmt.Errorf("game %d: %d rolls on a %d cell track", i+1, s.DiceRollCount, s.BoardLength)
			}
		}

		s := eng.Snapshot()
		switch s.Status {
		case models.Won:
			r.Wins++
		case models.Lost:
			r.Losses++
		}
		rolls += s.DiceRollCount
		kills += s.Player.MonstersKilled
		loot += s.Player.TreasuresFound
		r.Results = append(r.Results, Game{
			BoardLength:    s.BoardLength,
			Position:       s.Position,
			Status:         s.Status,
			Rolls:          s.DiceRollCount,
			HP:             s.Player.HP,
			Attack:         s.Player.Attack,
			MonstersKilled: s.Player.MonstersKilled,
			TreasuresFound: s.Player.TreasuresFound,
		})
	}

	if games > 0 {
		n := float64(games)
		r.WinRate = float64(r.Wins) / n
		r.AvgRolls = float64(rolls) / n
		r.AvgKills = float64(kills) / n
		r.AvgLoot = float64(loot) / n
	}
	return r, nil
}

// WriteReport writes r as YAML to path.
func (r *Report) WriteReport(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
