// internal/system/player_system.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/types"
)

// advancePlayer moves and fires from the stored input, then collects any
// power-up the tank now covers.
func (s *TankSystem) advancePlayer(id types.EntityID, t *component.Tank, now int64) {
	if s.input.Move != component.DirNone {
		s.AttemptMove(id, s.input.Move, s.EffectiveSpeed(t, now))
	}
	if s.input.Fire {
		s.Shoot(id, now)
	}

	for {
		pid, hit := s.collisions.PowerUpAt(t.Rect)
		if !hit {
			return
		}
		s.game.OnPowerUpCollected(id, pid, now)
		if _, still := s.ecs.PowerUps[pid]; still {
			// the orchestrator did not consume it; avoid spinning
			return
		}
	}
}
