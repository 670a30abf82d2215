package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// advanceEnemy runs the patrol policy: keep going in the current heading,
// turn and retry once when blocked, occasionally turn anyway, occasionally
// fire.
func (s *TankSystem) advanceEnemy(id types.EntityID, t *component.Tank, now int64) {
	speed := s.EffectiveSpeed(t, now)
	if !s.AttemptMove(id, t.Facing, speed) {
		t.Facing = utils.Pick(s.rng, t.Facing.Others())
		s.AttemptMove(id, t.Facing, speed)
	}

	if s.rng.Chance(config.EnemyTurnChance) {
		t.Facing = utils.Pick(s.rng, t.Facing.Others())
	}
	if s.rng.Chance(config.EnemyFireChance) {
		s.Shoot(id, now)
	}
}
