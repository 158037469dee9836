package engine

import (
	"github.com/tatianab/deadly-dice/internal/models"
	"go.uber.org/zap"
)

// fight resolves combat against m to the death of one side and reports
// whether the player survived. Only a surviving player's HP is committed;
// a defeated player is left at 0.
func (e *Engine) fight(m models.Monster) bool {
	p := &e.session.Player
	e.logf("A %s appears! (attack: %d, HP: %d)", m.Name, m.Attack, m.HP)

	hp, monsterHP := p.HP, m.HP
	exchanges := 0
	for hp > 0 && monsterHP > 0 {
		exchanges++
		dmg := scaled(e.src, p.Attack)
		monsterHP -= dmg
		e.logf("You deal %d damage!", dmg)

		if monsterHP > 0 {
			dmg := scaled(e.src, m.Attack)
			hp -= dmg
			e.logf("%s deals %d damage!", m.Name, dmg)
		}
	}

	won := hp > 0
	if won {
		p.HP = hp
		p.MonstersKilled++
		e.logf("Victory!")
	} else {
		p.HP = 0
		e.logf("You were defeated...")
	}
	e.logger.Debug("combat resolved",
		zap.String("monster", m.Name),
		zap.Int("exchanges", exchanges),
		zap.Bool("won", won),
		zap.Int("hp", p.HP))
	return won
}
