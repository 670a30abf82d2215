// internal/app/game.go
package app

import (
	"fmt"

	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/interfaces"
	"tank-battle/internal/system"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"

	"github.com/rs/zerolog"
)

// Game is the level/run orchestrator. It owns the entity tables, the run
// state (score, lives, level, quota, base shield, terminal reason) and the
// order in which systems run inside a tick.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	CollisionSystem    *system.CollisionSystem
	TankSystem         *system.TankSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	PowerUpSystem      *system.PowerUpSystem
	StatusEffectSystem *system.StatusEffectSystem
	RenderSystem       *system.RenderSystem

	log           zerolog.Logger
	seed          int64
	transitionMs  int64
	randomTerrain bool

	// Run state
	phase         component.Phase
	reason        component.TerminalReason
	score         int
	lives         int
	level         int
	wave          *component.Wave
	now           int64
	transitionEnd int64
	baseShieldEnd int64
	baseWalls     []types.EntityID // tiles around the base, swapped by the base shield
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the random seed. Zero picks a time-based one.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithTransition sets how long the level transition lasts. Zero starts the
// next level on the completing tick.
func WithTransition(ms int64) Option {
	return func(g *Game) { g.transitionMs = ms }
}

// WithoutRandomTerrain skips the density fill; the base and its walls are
// still placed.
func WithoutRandomTerrain() Option {
	return func(g *Game) { g.randomTerrain = false }
}

// NewGame builds an orchestrator in the menu phase.
func NewGame(opts ...Option) *Game {
	g := &Game{
		log:           zerolog.Nop(),
		transitionMs:  config.LevelTransitionMs,
		randomTerrain: true,
		phase:         component.PhaseMenu,
		reason:        component.ReasonNone,
	}
	for _, opt := range opts {
		opt(g)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.Rng = utils.NewPRNGService(g.seed)
	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.TankSystem = system.NewTankSystem(ecs, g.CollisionSystem, eventDispatcher, g.Rng, g)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.CollisionSystem, g.TankSystem, g)
	g.WaveSystem = system.NewWaveSystem(ecs, g.CollisionSystem, g.TankSystem, g.Rng, g.log)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs, eventDispatcher, g.CollisionSystem, g.Rng, g.log)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	g.log.Debug().Int64("seed", g.Rng.Seed()).Msg("game created")
	return g
}

var _ interfaces.GameContext = (*Game)(nil)

// StartRun begins a fresh run at level 1.
func (g *Game) StartRun(now int64) {
	g.now = now
	g.score = 0
	g.level = 1
	g.lives = config.PlayerLives
	g.reason = component.ReasonNone
	g.phase = component.PhasePlaying
	g.log.Info().Int64("seed", g.Rng.Seed()).Msg("run started")
	g.InitLevel(1, now)
}

// InitLevel clears the arena and builds level n. A level missing from the
// table ends the run as a victory.
func (g *Game) InitLevel(n int, now int64) {
	def, ok := defs.Level(n)
	if !ok {
		g.EndRun(component.ReasonVictory)
		return
	}

	g.now = now
	g.level = n
	g.ECS.Clear()
	g.baseShieldEnd = 0
	g.wave = &component.Wave{
		Weights:   def.WeightedClasses(),
		Remaining: def.EnemyCount,
		LastSpawn: now,
	}

	g.placeBase()
	if g.randomTerrain {
		g.fillTerrain(def.TerrainDensity)
	}
	g.createPlayer(false, now)
	spawned := g.WaveSystem.SpawnInitial(g.wave, now)
	g.PowerUpSystem.Reset(now)
	g.phase = component.PhasePlaying

	g.log.Info().
		Int("level", n).
		Int("quota", def.EnemyCount).
		Float64("density", def.TerrainDensity).
		Int("initial_enemies", spawned).
		Msg("level started")
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: n}})
}

// Tick advances the simulation to now. It does nothing once the run is
// over or while in the menu.
func (g *Game) Tick(now int64) {
	switch g.phase {
	case component.PhaseMenu, component.PhaseGameOver:
		return
	case component.PhaseLevelTransition:
		g.now = now
		if now >= g.transitionEnd {
			g.InitLevel(g.level, now)
		}
		return
	}
	g.now = now

	g.TickBaseShield(now)
	g.TankSystem.Update(now)
	g.ProjectileSystem.Update(now)
	if g.IsTerminal() {
		return
	}
	g.PowerUpSystem.Update(now)
	g.StatusEffectSystem.Update(now)
	g.WaveSystem.Update(g.wave, now)

	if _, alive := g.TankSystem.PlayerID(); !alive {
		g.handlePlayerDeath(now)
		if g.IsTerminal() {
			return
		}
	}

	if g.wave.Remaining <= 0 && g.ECS.EnemyCount() == 0 {
		g.completeLevel(now)
	}
}

// handlePlayerDeath accounts for a player removed by a body collision.
func (g *Game) handlePlayerDeath(now int64) {
	if g.LoseLife(now) {
		g.createPlayer(true, now)
	}
}

func (g *Game) completeLevel(now int64) {
	g.score += config.PointsForLevelUp
	finished := g.level
	g.level++
	g.announceLevelComplete(finished)

	if g.level > defs.MaxLevel() {
		g.EndRun(component.ReasonVictory)
		return
	}
	if g.transitionMs <= 0 {
		g.InitLevel(g.level, now)
		return
	}
	g.phase = component.PhaseLevelTransition
	g.transitionEnd = now + g.transitionMs
}

func (g *Game) announceLevelComplete(finished int) {
	g.log.Info().Int("level", finished).Int("score", g.score).Msg("level complete")
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: finished}})
}

// LoseLife takes one life. With none left the run ends.
func (g *Game) LoseLife(now int64) bool {
	g.lives--
	if g.lives > 0 {
		g.log.Debug().Int("lives", g.lives).Msg("player lost a life")
		return true
	}
	g.lives = 0
	g.EndRun(component.ReasonPlayerDead)
	return false
}

// OnEnemyDestroyed scores and removes an enemy and rolls a power-up drop at
// its last position.
func (g *Game) OnEnemyDestroyed(id types.EntityID) {
	t, ok := g.ECS.Tanks[id]
	if !ok || t.IsPlayer() {
		return
	}
	g.score += t.Profile.Points
	cx, cy := t.Rect.Center()
	t.Alive = false
	delete(g.ECS.Tanks, id)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{Enemy: id, Class: t.Class(), Points: t.Profile.Points, X: cx, Y: cy},
	})
	g.PowerUpSystem.MaybeDrop(cx, cy, g.now)
}

// OnPowerUpCollected applies a picked-up power-up exactly once.
func (g *Game) OnPowerUpCollected(tank, powerUp types.EntityID, now int64) {
	p, ok := g.ECS.PowerUps[powerUp]
	if !ok {
		return
	}
	g.PowerUpSystem.Remove(powerUp)

	if p.Type == defs.PowerUpBaseShield {
		g.ApplyBaseShield(now)
	} else {
		g.TankSystem.ApplyPowerUp(tank, p.Type, now)
	}
	g.score += config.PointsPerPowerUp
	g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Type: p.Type}})
}

// EndRun makes the run terminal. Only the first reason sticks.
func (g *Game) EndRun(reason component.TerminalReason) {
	if g.IsTerminal() {
		return
	}
	g.phase = component.PhaseGameOver
	g.reason = reason
	g.log.Info().Str("reason", string(reason)).Int("score", g.score).Int("level", g.level).Msg("game over")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Reason: reason, Score: g.score, Level: g.level},
	})
}

// IsTerminal reports whether the run has ended.
func (g *Game) IsTerminal() bool {
	return g.phase == component.PhaseGameOver
}

// ReturnToMenu tears the run down. All entity tables are cleared together.
func (g *Game) ReturnToMenu() {
	g.ECS.Clear()
	g.wave = nil
	g.baseWalls = nil
	g.baseShieldEnd = 0
	g.phase = component.PhaseMenu
	g.reason = component.ReasonNone
}

// SetInput forwards the player's control vector.
func (g *Game) SetInput(in component.Input) {
	g.TankSystem.SetInput(in)
}

// Draw renders the arena at the last ticked time.
func (g *Game) Draw(surface interfaces.Surface, res interfaces.Resources) {
	g.RenderSystem.Draw(surface, res, g.now)
}

func (g *Game) Phase() component.Phase           { return g.phase }
func (g *Game) Reason() component.TerminalReason { return g.reason }
func (g *Game) Score() int                       { return g.score }
func (g *Game) Lives() int                       { return g.lives }
func (g *Game) Level() int                       { return g.level }
func (g *Game) Now() int64                       { return g.now }
func (g *Game) Seed() int64                      { return g.Rng.Seed() }
func (g *Game) BaseShieldEnd() int64             { return g.baseShieldEnd }

// Quota returns how many enemies are still to spawn this level.
func (g *Game) Quota() int {
	if g.wave == nil {
		return 0
	}
	return g.wave.Remaining
}

// EnemiesOnScreen returns the number of live enemy tanks.
func (g *Game) EnemiesOnScreen() int {
	return g.ECS.EnemyCount()
}

// Player returns the live player tank, or nil.
func (g *Game) Player() *component.Tank {
	if id, ok := g.TankSystem.PlayerID(); ok {
		return g.ECS.Tanks[id]
	}
	return nil
}

// Summary is a one-line description of the run, used for clipboard copies
// and headless output.
func (g *Game) Summary() string {
	return fmt.Sprintf("Tank Battle: %s at level %d, score %d, lives %d (seed %d)",
		g.reason, g.level, g.score, g.lives, g.Rng.Seed())
}
