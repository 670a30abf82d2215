// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"tank-battle/internal/component"
	"tank-battle/internal/types"
)

type ECS struct {
	NextID   types.EntityID
	Tanks    map[types.EntityID]*component.Tank
	Bullets  map[types.EntityID]*component.Bullet
	Terrain  map[types.EntityID]*component.Terrain
	PowerUps map[types.EntityID]*component.PowerUp
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Tanks:    make(map[types.EntityID]*component.Tank),
		Bullets:  make(map[types.EntityID]*component.Bullet),
		Terrain:  make(map[types.EntityID]*component.Terrain),
		PowerUps: make(map[types.EntityID]*component.PowerUp),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Clear drops every entity. Ids keep increasing so stale handles never alias
// a new entity.
func (ecs *ECS) Clear() {
	clear(ecs.Tanks)
	clear(ecs.Bullets)
	clear(ecs.Terrain)
	clear(ecs.PowerUps)
}

// SortedIDs returns the keys of m in ascending order, which is creation
// order.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}

// EnemyCount returns the number of enemy tanks in the arena.
func (ecs *ECS) EnemyCount() int {
	n := 0
	for _, t := range ecs.Tanks {
		if t.Faction == component.FactionEnemy {
			n++
		}
	}
	return n
}
