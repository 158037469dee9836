package engine

import "github.com/tatianab/deadly-dice/internal/models"

// applyTreasure applies t to the session and returns any extra steps moved.
// Reaching the end of the track through a Movement Potion wins immediately.
func (e *Engine) applyTreasure(t models.TreasureArchetype) int {
	s := &e.session
	s.Player.TreasuresFound++
	e.logf("Found a %s! %s", t.Name, t.Effect)

	switch t.Kind {
	case models.PowerPotion:
		s.Player.Attack += powerBonus
		e.logf("Attack raised to %d", s.Player.Attack)
	case models.HPPotion:
		s.Player.HP += healAmount
		e.logf("HP restored to %d", s.Player.HP)
	case models.MovementPotion:
		extra := between(e.src, minExtraSteps, maxExtraSteps)
		s.Position = min(s.Position+extra, s.BoardLength)
		e.logf("Advanced %d extra cells!", extra)
		if s.Position == s.BoardLength {
			s.Status = models.Won
		}
		return extra
	}
	return 0
}
