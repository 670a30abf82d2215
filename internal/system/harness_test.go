package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"

	"github.com/rs/zerolog"
)

// fakeGame stands in for the orchestrator and records what systems report.
type fakeGame struct {
	ecs       *entity.ECS
	lives     int
	reason    component.TerminalReason
	destroyed []types.EntityID
	collected []types.EntityID
}

func (g *fakeGame) LoseLife(now int64) bool {
	g.lives--
	if g.lives > 0 {
		return true
	}
	g.EndRun(component.ReasonPlayerDead)
	return false
}

func (g *fakeGame) OnEnemyDestroyed(id types.EntityID) {
	g.destroyed = append(g.destroyed, id)
	delete(g.ecs.Tanks, id)
}

func (g *fakeGame) OnPowerUpCollected(tank, powerUp types.EntityID, now int64) {
	g.collected = append(g.collected, powerUp)
	delete(g.ecs.PowerUps, powerUp)
}

func (g *fakeGame) EndRun(reason component.TerminalReason) {
	if !g.IsTerminal() {
		g.reason = reason
	}
}

func (g *fakeGame) IsTerminal() bool {
	return g.reason != "" && g.reason != component.ReasonNone
}

type harness struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	game        *fakeGame
	rng         *utils.PRNGService
	collisions  *CollisionSystem
	tanks       *TankSystem
	projectiles *ProjectileSystem
	waves       *WaveSystem
	powerUps    *PowerUpSystem
	events      []event.Event
}

func newHarness() *harness {
	h := &harness{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
	}
	h.game = &fakeGame{ecs: h.ecs, lives: 3, reason: component.ReasonNone}
	h.collisions = NewCollisionSystem(h.ecs)
	h.tanks = NewTankSystem(h.ecs, h.collisions, h.dispatcher, h.rng, h.game)
	h.projectiles = NewProjectileSystem(h.ecs, h.dispatcher, h.collisions, h.tanks, h.game)
	h.waves = NewWaveSystem(h.ecs, h.collisions, h.tanks, h.rng, zerolog.Nop())
	h.powerUps = NewPowerUpSystem(h.ecs, h.dispatcher, h.collisions, h.rng, zerolog.Nop())
	h.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { h.events = append(h.events, e) }))
	return h
}

func (h *harness) terrain(col, row int, t defs.TerrainType) types.EntityID {
	id := h.ecs.NewEntity()
	h.ecs.Terrain[id] = component.NewTerrain(col, row, t)
	return id
}

func (h *harness) bullet(x, y float64, dir component.Direction, faction component.Faction) types.EntityID {
	id := h.ecs.NewEntity()
	h.ecs.Bullets[id] = &component.Bullet{
		Rect:      utils.NewRect(x, y, 8, 8),
		Direction: dir,
		Faction:   faction,
		Speed:     8,
	}
	return id
}

func (h *harness) eventTypes() []event.EventType {
	var out []event.EventType
	for _, e := range h.events {
		out = append(out, e.Type)
	}
	return out
}
