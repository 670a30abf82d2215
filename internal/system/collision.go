// internal/system/collision.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/entity"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// CollisionSystem answers the spatial queries used every tick. All scans
// visit entities in id order, so "first hit" is deterministic.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// BlockingTerrainAt returns the first non-passable tile overlapping r.
func (s *CollisionSystem) BlockingTerrainAt(r utils.Rect) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.Terrain) {
		t := s.ecs.Terrain[id]
		if t.Blocks() && t.Rect.Overlaps(r) {
			return id, true
		}
	}
	return 0, false
}

// TankAt returns the first live tank other than except overlapping r.
func (s *CollisionSystem) TankAt(r utils.Rect, except types.EntityID) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.Tanks) {
		if id == except {
			continue
		}
		t := s.ecs.Tanks[id]
		if t.Alive && t.Rect.Overlaps(r) {
			return id, true
		}
	}
	return 0, false
}

// FactionTankAt returns the first live tank of faction overlapping r.
func (s *CollisionSystem) FactionTankAt(r utils.Rect, faction component.Faction) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.Tanks) {
		t := s.ecs.Tanks[id]
		if t.Alive && t.Faction == faction && t.Rect.Overlaps(r) {
			return id, true
		}
	}
	return 0, false
}

// PowerUpAt returns the first power-up overlapping r.
func (s *CollisionSystem) PowerUpAt(r utils.Rect) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.PowerUps) {
		if s.ecs.PowerUps[id].Rect.Overlaps(r) {
			return id, true
		}
	}
	return 0, false
}

// TankBlocked reports whether a tank may not occupy r: outside the arena, on
// another live tank or on non-grass terrain.
func (s *CollisionSystem) TankBlocked(r utils.Rect, self types.EntityID) bool {
	if !r.Within(utils.ArenaBounds()) {
		return true
	}
	if _, hit := s.TankAt(r, self); hit {
		return true
	}
	_, hit := s.BlockingTerrainAt(r)
	return hit
}

// SpawnFree reports whether r is clear of blocking terrain and every tank.
func (s *CollisionSystem) SpawnFree(r utils.Rect) bool {
	return !s.TankBlocked(r, 0)
}
