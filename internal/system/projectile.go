// internal/system/projectile.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/interfaces"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// ProjectileSystem moves bullets and resolves what they hit.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	collisions      *CollisionSystem
	tanks           *TankSystem
	game            interfaces.GameContext
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, collisions *CollisionSystem, tanks *TankSystem, game interfaces.GameContext) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		collisions:      collisions,
		tanks:           tanks,
		game:            game,
	}
}

// Update advances the bullets that existed when the tick started. It stops
// as soon as the run becomes terminal.
func (s *ProjectileSystem) Update(now int64) {
	for _, id := range entity.SortedIDs(s.ecs.Bullets) {
		if s.game.IsTerminal() {
			return
		}
		if b, ok := s.ecs.Bullets[id]; ok {
			s.step(id, b, now)
		}
	}
}

func (s *ProjectileSystem) step(id types.EntityID, b *component.Bullet, now int64) {
	dx, dy := b.Direction.Step(b.Speed)
	b.Rect = b.Rect.Offset(dx, dy)

	if b.Rect.Outside(utils.ArenaBounds()) {
		s.removeProjectile(id)
		return
	}

	// Grass never stops a bullet, so only blocking tiles are considered.
	if tid, hit := s.collisions.BlockingTerrainAt(b.Rect); hit {
		ApplyDamage(s.ecs, s.eventDispatcher, s.game, tid, b.Owner)
		s.removeProjectile(id)
		return
	}

	if tankID, hit := s.collisions.FactionTankAt(b.Rect, b.Faction.Opponent()); hit {
		s.tanks.ReceiveHit(tankID, now)
		s.removeProjectile(id)
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Bullets, id)
}
