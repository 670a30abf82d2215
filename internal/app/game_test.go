package app

import (
	"testing"

	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/system"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareGame starts a run on an arena holding only the base, its walls,
// the player and the opening enemy batch.
func newBareGame(t *testing.T, opts ...Option) (*Game, *[]event.EventType) {
	t.Helper()
	opts = append([]Option{WithSeed(1), WithoutRandomTerrain(), WithTransition(0)}, opts...)
	g := NewGame(opts...)
	var seen []event.EventType
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { seen = append(seen, e.Type) }))
	g.StartRun(0)
	return g, &seen
}

func clearEnemies(g *Game) {
	for id, tank := range g.ECS.Tanks {
		if !tank.IsPlayer() {
			delete(g.ECS.Tanks, id)
		}
	}
}

func count(events []event.EventType, want event.EventType) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

func TestStartRun_BuildsLevelOne(t *testing.T) {
	g, seen := newBareGame(t)

	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, config.InitialEnemyBatch, g.EnemiesOnScreen())
	assert.Equal(t, defs.LevelPatterns[1].EnemyCount-config.InitialEnemyBatch, g.Quota())
	assert.Len(t, g.ECS.Terrain, 6, "base and five walls")

	p := g.Player()
	require.NotNil(t, p)
	assert.Equal(t, utils.NewRect(120, 520, 40, 40), p.Rect)
	assert.Equal(t, component.DirUp, p.Facing)
	assert.Equal(t, 1, count(*seen, event.LevelStarted))
}

func TestFillTerrain_LeavesCornersAndBaseClear(t *testing.T) {
	g := NewGame(WithSeed(3))
	g.fillTerrain(1)

	assert.Len(t, g.ECS.Terrain, 13*config.GridWidth-8)
	for _, tile := range g.ECS.Terrain {
		col, row := utils.PixelToTile(tile.Rect.X, tile.Rect.Y)
		assert.LessOrEqual(t, row, config.GridHeight-3)
		if row < 2 {
			assert.True(t, col >= 2 && col <= config.GridWidth-3, "corner cell %d,%d filled", col, row)
		}
		assert.NotEqual(t, defs.TerrainBase, tile.Type)
	}
}

func TestBaseShield_RoundTrip(t *testing.T) {
	g, _ := newBareGame(t)
	// one wall already shot away
	delete(g.ECS.Terrain, g.baseWalls[0])

	g.ApplyBaseShield(1000)
	walls := g.BaseWalls()
	require.Len(t, walls, 4)
	for _, w := range walls {
		assert.Equal(t, defs.TerrainSteel, w.Type)
	}
	assert.Equal(t, int64(16000), g.BaseShieldEnd())

	g.TickBaseShield(15999)
	assert.Equal(t, defs.TerrainSteel, g.BaseWalls()[0].Type)

	g.TickBaseShield(16000)
	walls = g.BaseWalls()
	require.Len(t, walls, 4, "destroyed walls are not rebuilt")
	for _, w := range walls {
		assert.Equal(t, defs.TerrainBrick, w.Type)
		assert.Equal(t, 1, w.Health)
	}
	assert.Zero(t, g.BaseShieldEnd())
}

func TestTick_LevelCompletionBonusOnce(t *testing.T) {
	g, seen := newBareGame(t)
	clearEnemies(g)
	g.wave.Remaining = 0

	g.Tick(16)
	assert.Equal(t, config.PointsForLevelUp, g.Score())
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, defs.LevelPatterns[2].EnemyCount-config.InitialEnemyBatch, g.Quota())

	g.Tick(33)
	assert.Equal(t, config.PointsForLevelUp, g.Score())
	assert.Equal(t, 1, count(*seen, event.LevelCompleted))
}

func TestTick_LevelTransitionWaits(t *testing.T) {
	g, _ := newBareGame(t, WithTransition(1000))
	clearEnemies(g)
	g.wave.Remaining = 0

	g.Tick(16)
	assert.Equal(t, component.PhaseLevelTransition, g.Phase())
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, 500, g.Score())

	g.Tick(1015)
	assert.Equal(t, component.PhaseLevelTransition, g.Phase())

	g.Tick(1016)
	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 500, g.Score())
	assert.NotNil(t, g.Player())
}

func TestTick_FinalLevelIsVictory(t *testing.T) {
	g, seen := newBareGame(t)
	g.InitLevel(defs.MaxLevel(), 0)
	clearEnemies(g)
	g.wave.Remaining = 0

	g.Tick(16)

	assert.True(t, g.IsTerminal())
	assert.Equal(t, component.ReasonVictory, g.Reason())
	assert.Equal(t, 500, g.Score())
	assert.Equal(t, 1, count(*seen, event.GameOver))
}

func TestInitLevel_MissingLevelIsVictory(t *testing.T) {
	g, _ := newBareGame(t)
	g.InitLevel(99, 0)
	assert.Equal(t, component.ReasonVictory, g.Reason())
}

func TestTerminalRunStopsMutation(t *testing.T) {
	g, seen := newBareGame(t)
	g.EndRun(component.ReasonBaseDestroyed)
	g.EndRun(component.ReasonVictory)

	before := map[types.EntityID]utils.Rect{}
	for id, tank := range g.ECS.Tanks {
		before[id] = tank.Rect
	}
	g.SetInput(component.Input{Move: component.DirRight, Fire: true})
	for now := int64(16); now < 5000; now += 16 {
		g.Tick(now)
	}

	assert.Equal(t, component.ReasonBaseDestroyed, g.Reason())
	assert.Equal(t, component.PhaseGameOver, g.Phase())
	assert.Empty(t, g.ECS.Bullets)
	for id, tank := range g.ECS.Tanks {
		assert.Equal(t, before[id], tank.Rect)
	}
	assert.Equal(t, 1, count(*seen, event.GameOver))
}

func TestTick_BaseHitEndsRunMidTick(t *testing.T) {
	g, _ := newBareGame(t)
	bid := g.ECS.NewEntity()
	g.ECS.Bullets[bid] = &component.Bullet{
		Rect:      utils.NewRect(416, 545, 8, 8),
		Direction: component.DirDown,
		Faction:   component.FactionEnemy,
		Speed:     8,
	}

	g.Tick(16)

	assert.Equal(t, component.ReasonBaseDestroyed, g.Reason())
	assert.Equal(t, 3, g.Lives())
}

func TestTick_BodyCollisionCostsOneLife(t *testing.T) {
	g, _ := newBareGame(t)
	g.TankSystem.CreateTank(120, 520, defs.ClassNormal, component.FactionEnemy, component.DirUp)

	g.Tick(16)
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, defs.ProfileFor(defs.ClassNormal).Points, g.Score())

	p := g.Player()
	require.NotNil(t, p, "player respawns on the same tick")
	assert.Equal(t, utils.NewRect(120, 520, 40, 40), p.Rect)
	assert.Equal(t, int64(16+config.RespawnShieldMs), p.Effects.ShieldEnd)

	g.Tick(33)
	assert.Equal(t, 2, g.Lives())
}

func TestBulletOnLastLifeEndsRun(t *testing.T) {
	g, _ := newBareGame(t)
	g.lives = 1
	id, ok := g.TankSystem.PlayerID()
	require.True(t, ok)

	g.TankSystem.ReceiveHit(id, 16)

	assert.Equal(t, component.ReasonPlayerDead, g.Reason())
	assert.Equal(t, 0, g.Lives())
	assert.Nil(t, g.Player())
}

func TestPowerUpCollection(t *testing.T) {
	cases := []struct {
		kind  defs.PowerUpType
		check func(t *testing.T, g *Game)
	}{
		{defs.PowerUpRapidFire, func(t *testing.T, g *Game) {
			assert.Equal(t, int64(16+10000), g.Player().Effects.RapidFireEnd)
		}},
		{defs.PowerUpShield, func(t *testing.T, g *Game) {
			assert.Equal(t, int64(16+5000), g.Player().Effects.ShieldEnd)
		}},
		{defs.PowerUpBaseShield, func(t *testing.T, g *Game) {
			assert.Equal(t, int64(16+15000), g.BaseShieldEnd())
			for _, w := range g.BaseWalls() {
				assert.Equal(t, defs.TerrainSteel, w.Type)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			g, seen := newBareGame(t)
			g.PowerUpSystem.Spawn(tc.kind, 130, 530, 0)

			g.Tick(16)

			assert.Empty(t, g.ECS.PowerUps)
			assert.Equal(t, config.PointsPerPowerUp, g.Score())
			assert.Equal(t, 1, count(*seen, event.PowerUpCollected))
			tc.check(t, g)
		})
	}
}

func TestReturnToMenu_ClearsEverything(t *testing.T) {
	g, _ := newBareGame(t)
	g.PowerUpSystem.Spawn(defs.PowerUpSpeed, 300, 300, 0)
	g.SetInput(component.Input{Fire: true})
	g.Tick(16)
	require.NotEmpty(t, g.ECS.Bullets)

	g.ReturnToMenu()

	assert.Equal(t, component.PhaseMenu, g.Phase())
	assert.Empty(t, g.ECS.Tanks)
	assert.Empty(t, g.ECS.Bullets)
	assert.Empty(t, g.ECS.Terrain)
	assert.Empty(t, g.ECS.PowerUps)
	assert.Zero(t, g.Quota())

	g.Tick(33)
	assert.Empty(t, g.ECS.Tanks)
}

func TestSummary(t *testing.T) {
	g := NewGame(WithSeed(77), WithoutRandomTerrain())
	g.StartRun(0)
	g.EndRun(component.ReasonPlayerDead)

	assert.Equal(t, "Tank Battle: player_dead at level 1, score 0, lives 3 (seed 77)", g.Summary())
}

func TestActiveEffects(t *testing.T) {
	g, _ := newBareGame(t)
	id, _ := g.TankSystem.PlayerID()
	g.TankSystem.ApplyPowerUp(id, defs.PowerUpSpeed, 0)
	g.ApplyBaseShield(0)
	g.now = 2500

	effects := g.ActiveEffects()

	require.Len(t, effects, 2)
	assert.Equal(t, EffectStatus{Type: defs.PowerUpSpeed, RemainingMs: 7500}, effects[0])
	assert.Equal(t, int64(12), effects[1].Seconds())
}

// Seeded autopilot runs must replay exactly and keep every tank inside the
// arena, off blocking terrain and clear of every other tank on every tick.
func TestAutopilotRun_DeterministicAndLegal(t *testing.T) {
	run := func() (string, []utils.Rect) {
		g := NewGame(WithSeed(42), WithTransition(200))
		pilot := NewAutopilot(42)
		var clock Clock
		g.StartRun(clock.Now())

		lastScore := 0
		for i := 0; i < 3000 && !g.IsTerminal(); i++ {
			g.SetInput(pilot.Next())
			g.Tick(clock.Step())

			require.GreaterOrEqual(t, g.Score(), lastScore)
			lastScore = g.Score()
			require.True(t, g.Lives() >= 0 && g.Lives() <= config.PlayerLives)
			require.LessOrEqual(t, g.EnemiesOnScreen(), config.MaxEnemiesOnScreen+config.InitialEnemyBatch)
			for _, tank := range g.ECS.Tanks {
				require.True(t, tank.Rect.Within(utils.ArenaBounds()), "tank outside arena at tick %d", i)
				_, blocked := g.CollisionSystem.BlockingTerrainAt(tank.Rect)
				require.False(t, blocked, "tank on terrain at tick %d", i)
			}
			requireNoTankOverlap(t, g, i)
		}

		var rects []utils.Rect
		for _, id := range entity.SortedIDs(g.ECS.Tanks) {
			rects = append(rects, g.ECS.Tanks[id].Rect)
		}
		return g.Summary(), rects
	}

	s1, r1 := run()
	s2, r2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func requireNoTankOverlap(t *testing.T, g *Game, tick int) {
	t.Helper()
	ids := entity.SortedIDs(g.ECS.Tanks)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			ra, rb := g.ECS.Tanks[a].Rect, g.ECS.Tanks[b].Rect
			require.False(t, ra.Overlaps(rb), "tick %d: tank %d %v overlaps tank %d %v", tick, a, ra, b, rb)
		}
	}
}

// Respawns across many seeds land on enemies now and then; none of those
// overlaps may outlive the tick.
func TestAutopilotSweep_TanksNeverOverlap(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		g := NewGame(WithSeed(seed), WithTransition(200))
		pilot := NewAutopilot(seed)
		var clock Clock
		g.StartRun(clock.Now())
		for i := 0; i < 600 && !g.IsTerminal(); i++ {
			g.SetInput(pilot.Next())
			g.Tick(clock.Step())
			requireNoTankOverlap(t, g, i)
		}
	}
}

func TestBulletRespawnOntoEnemy(t *testing.T) {
	g, _ := newBareGame(t)
	clearEnemies(g)
	g.TankSystem.CreateTank(system.RespawnX, system.RespawnY, defs.ClassFast, component.FactionEnemy, component.DirUp)
	id, ok := g.TankSystem.PlayerID()
	require.True(t, ok)

	g.TankSystem.ReceiveHit(id, 16)

	assert.Equal(t, 2, g.Lives())
	assert.Nil(t, g.Player(), "respawn on an enemy is a contact death")
	assert.Zero(t, g.EnemiesOnScreen())
	assert.Equal(t, defs.ProfileFor(defs.ClassFast).Points, g.Score())

	g.Tick(33)
	assert.Equal(t, 1, g.Lives())
	p := g.Player()
	require.NotNil(t, p)
	x, y := utils.TileToPixel(config.PlayerSpawnX, config.PlayerSpawnY)
	assert.Equal(t, utils.NewRect(x, y, 40, 40), p.Rect)
}

func TestAutopilot(t *testing.T) {
	a, b := NewAutopilot(9), NewAutopilot(9)
	dirs := map[component.Direction]int{}
	fires := 0
	for i := 0; i < 2000; i++ {
		in := a.Next()
		require.Equal(t, in, b.Next())
		require.NotEqual(t, component.DirNone, in.Move)
		dirs[in.Move]++
		if in.Fire {
			fires++
		}
	}
	assert.Len(t, dirs, 4)
	assert.InDelta(t, 200, fires, 60)
}

func TestClock(t *testing.T) {
	var c Clock
	assert.Equal(t, int64(0), c.Now())
	assert.Equal(t, int64(16), c.Step())
	assert.Equal(t, int64(33), c.Step())
	assert.Equal(t, int64(2), c.Ticks())
	for i := 0; i < 58; i++ {
		c.Step()
	}
	assert.Equal(t, int64(1000), c.Now())
}
