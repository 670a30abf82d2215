// internal/system/movement.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/interfaces"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// TankSystem owns the per-tank contract: movement, shooting, hits, power-up
// effects and the per-tick advance of player and enemy tanks.
type TankSystem struct {
	ecs             *entity.ECS
	collisions      *CollisionSystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	game            interfaces.GameContext
	input           component.Input
}

func NewTankSystem(ecs *entity.ECS, collisions *CollisionSystem, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, game interfaces.GameContext) *TankSystem {
	return &TankSystem{
		ecs:             ecs,
		collisions:      collisions,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		game:            game,
	}
}

// SetInput stores the player's control vector for the coming ticks.
func (s *TankSystem) SetInput(in component.Input) {
	s.input = in
}

// CreateTank places a tank with its top-left corner at (x, y). The class
// profile is resolved here once and kept by value.
func (s *TankSystem) CreateTank(x, y float64, class defs.TankClass, faction component.Faction, facing component.Direction) types.EntityID {
	id := s.ecs.NewEntity()
	r := utils.NewRect(x, y, config.TankSize, config.TankSize)
	s.ecs.Tanks[id] = &component.Tank{
		Rect:     r,
		PrevRect: r,
		Facing:   facing,
		Faction:  faction,
		Profile:  defs.ProfileFor(class),
		Alive:    true,
	}
	return id
}

// PlayerID returns the live player tank, if any.
func (s *TankSystem) PlayerID() (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.Tanks) {
		if s.ecs.Tanks[id].IsPlayer() {
			return id, true
		}
	}
	return 0, false
}

// EffectiveSpeed is the profile speed, boosted while a speed power-up is on.
func (s *TankSystem) EffectiveSpeed(t *component.Tank, now int64) float64 {
	if t.Effects.Boosted(now) {
		return t.Profile.Speed * config.SpeedBoostMultiplier
	}
	return t.Profile.Speed
}

// AttemptMove displaces the tank by speed along dir. The move is rejected,
// leaving the tank where it was, if the new rectangle leaves the arena or
// overlaps another live tank or non-grass terrain. On success the facing is
// updated and the previous rectangle kept for rollback.
func (s *TankSystem) AttemptMove(id types.EntityID, dir component.Direction, speed float64) bool {
	t, ok := s.ecs.Tanks[id]
	if !ok || dir == component.DirNone {
		return false
	}
	dx, dy := dir.Step(speed)
	next := t.Rect.Offset(dx, dy)
	if s.collisions.TankBlocked(next, id) {
		return false
	}
	t.PrevRect = t.Rect
	t.Rect = next
	t.Facing = dir
	return true
}

// Update advances every tank that existed when the tick started, in
// creation order. Tanks spawned during the tick wait for the next one.
func (s *TankSystem) Update(now int64) {
	ids := entity.SortedIDs(s.ecs.Tanks)
	for _, id := range ids {
		t := s.ecs.Tanks[id]
		t.PrevRect = t.Rect
	}
	for _, id := range ids {
		if s.game.IsTerminal() {
			return
		}
		t, ok := s.ecs.Tanks[id]
		if !ok || !t.Alive {
			continue
		}
		if t.IsPlayer() {
			s.advancePlayer(id, t, now)
		} else {
			s.advanceEnemy(id, t, now)
		}
		if _, still := s.ecs.Tanks[id]; still {
			s.resolveContacts(id, t)
		}
	}
}

// SettleContacts runs the contact rule for a tank placed outside the move
// loop, such as a respawned player, so no overlap survives the tick.
func (s *TankSystem) SettleContacts(id types.EntityID) {
	if t, ok := s.ecs.Tanks[id]; ok && t.Alive {
		s.resolveContacts(id, t)
	}
}

// resolveContacts applies the tank-vs-tank rule for one tank after it
// moved. A player touching an enemy destroys both, shield or not. Two enemies
// touching both roll back to where they stood when the tick began and pick
// fresh headings.
func (s *TankSystem) resolveContacts(id types.EntityID, t *component.Tank) {
	otherID, hit := s.collisions.TankAt(t.Rect, id)
	if !hit {
		return
	}
	other := s.ecs.Tanks[otherID]
	if t.Faction == other.Faction {
		if t.Faction == component.FactionEnemy {
			t.Rect = t.PrevRect
			t.Facing = utils.Pick(s.rng, component.Directions)
			// the other tank only goes back if its old spot is still free
			if other.PrevRect != other.Rect && !s.collisions.TankBlocked(other.PrevRect, otherID) {
				other.Rect = other.PrevRect
			}
			other.Facing = utils.Pick(s.rng, component.Directions)
		}
		return
	}

	playerID, enemyID := id, otherID
	if !t.IsPlayer() {
		playerID, enemyID = otherID, id
	}
	s.destroyPlayer(playerID)
	s.game.OnEnemyDestroyed(enemyID)
}

// destroyPlayer removes the player tank without touching lives; the
// orchestrator accounts for the death on its next tick.
func (s *TankSystem) destroyPlayer(id types.EntityID) {
	if t, ok := s.ecs.Tanks[id]; ok {
		t.Alive = false
		delete(s.ecs.Tanks, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed})
	}
}
