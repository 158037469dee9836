package engine

import "github.com/tatianab/deadly-dice/internal/models"

const (
	MinBoardLength = 200
	MaxBoardLength = 300

	dieFaces = 6

	powerBonus    = 5
	healAmount    = 130
	minExtraSteps = 2
	maxExtraSteps = 6
)

func drawCellEvent(src Source) models.CellEvent {
	r := src.Float64()
	switch {
	case r < 0.2:
		return models.Danger
	case r < 0.35:
		return models.Treasure
	default:
		return models.Normal
	}
}

func drawMonsterArchetype(src Source) models.MonsterArchetype {
	r := src.Float64()
	switch {
	case r < 0.2:
		return models.Unicorn
	case r < 0.5:
		return models.Gecko
	default:
		return models.Squirrel
	}
}

func drawTreasure(src Source) models.TreasureArchetype {
	r := src.Float64()
	switch {
	case r < 0.3:
		return models.Power
	case r < 0.6:
		return models.Health
	default:
		return models.Movement
	}
}

// spawn samples a monster, HP first and then attack.
func spawn(src Source, a models.MonsterArchetype) models.Monster {
	hp := between(src, a.MinHP, a.MaxHP)
	atk := between(src, a.MinAttack, a.MaxAttack)
	return models.Monster{Name: a.Name, Attack: atk, HP: hp}
}
