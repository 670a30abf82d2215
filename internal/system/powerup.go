// internal/system/powerup.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"

	"github.com/rs/zerolog"
)

// PowerUpSystem drops, spawns and expires power-ups.
type PowerUpSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	collisions      *CollisionSystem
	rng             *utils.PRNGService
	log             zerolog.Logger
	lastFieldSpawn  int64
}

func NewPowerUpSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, collisions *CollisionSystem, rng *utils.PRNGService, log zerolog.Logger) *PowerUpSystem {
	return &PowerUpSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		collisions:      collisions,
		rng:             rng,
		log:             log,
	}
}

// Reset restarts the field spawner's delay.
func (s *PowerUpSystem) Reset(now int64) {
	s.lastFieldSpawn = now
}

// Spawn places a power-up of the given kind with its top-left at (x, y).
func (s *PowerUpSystem) Spawn(kind defs.PowerUpType, x, y float64, now int64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.PowerUps[id] = &component.PowerUp{
		Rect:      utils.NewRect(x, y, config.PowerUpSize, config.PowerUpSize),
		Type:      kind,
		SpawnTime: now,
		ExpiresAt: now + config.PowerUpLifetimeMs,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpSpawned, Data: event.PowerUpData{Type: kind}})
	return id
}

// MaybeDrop rolls the drop chance for a destroyed enemy centred at (cx, cy).
func (s *PowerUpSystem) MaybeDrop(cx, cy float64, now int64) (types.EntityID, bool) {
	if !s.rng.Chance(config.PowerUpDropChance) {
		return 0, false
	}
	kind := utils.Pick(s.rng, defs.PowerUpTypes)
	r := utils.CenteredAt(cx, cy, config.PowerUpSize, config.PowerUpSize)
	s.log.Debug().Str("type", string(kind)).Msg("power-up dropped")
	return s.Spawn(kind, r.X, r.Y, now), true
}

// Remove takes a power-up out of the arena.
func (s *PowerUpSystem) Remove(id types.EntityID) {
	delete(s.ecs.PowerUps, id)
}

// Update expires stale power-ups and runs the field spawner.
func (s *PowerUpSystem) Update(now int64) {
	for _, id := range entity.SortedIDs(s.ecs.PowerUps) {
		if s.ecs.PowerUps[id].Expired(now) {
			s.Remove(id)
		}
	}

	if now-s.lastFieldSpawn < config.PowerUpSpawnDelayMs {
		return
	}
	if !s.rng.Chance(config.PowerUpSpawnChance) {
		return
	}
	kind := utils.Pick(s.rng, defs.PowerUpTypes)
	for i := 0; i < config.PowerUpPlacementTry; i++ {
		x := float64(s.rng.Intn(config.ScreenWidth - config.PowerUpSize + 1))
		y := float64(s.rng.Intn(config.ScreenHeight - config.PowerUpSize + 1))
		r := utils.NewRect(x, y, config.PowerUpSize, config.PowerUpSize)
		if _, blocked := s.collisions.BlockingTerrainAt(r); blocked {
			continue
		}
		s.Spawn(kind, x, y, now)
		s.lastFieldSpawn = now
		s.log.Debug().Str("type", string(kind)).Msg("field power-up spawned")
		return
	}
	s.log.Trace().Msg("no free cell for field power-up")
}
