package system

import (
	"testing"

	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWave(remaining int) *component.Wave {
	return &component.Wave{
		Weights:   defs.LevelPatterns[1].WeightedClasses(),
		Remaining: remaining,
	}
}

func TestWaveSystem_SpawnTakesFromQuota(t *testing.T) {
	h := newHarness()
	wave := newWave(5)

	id, ok := h.waves.Spawn(wave, 1234)
	require.True(t, ok)

	tank := h.ecs.Tanks[id]
	assert.Equal(t, 4, wave.Remaining)
	assert.Equal(t, int64(1234), wave.LastSpawn)
	assert.Equal(t, 0.0, tank.Rect.Y)
	assert.Equal(t, component.FactionEnemy, tank.Faction)
	assert.Equal(t, component.DirDown, tank.Facing)
	assert.Contains(t, []defs.TankClass{defs.ClassNormal, defs.ClassFast}, tank.Class())
}

func TestWaveSystem_BlockedTopRowDefers(t *testing.T) {
	h := newHarness()
	for col := 0; col < config.GridWidth; col++ {
		h.terrain(col, 0, defs.TerrainSteel)
	}
	wave := newWave(5)

	_, ok := h.waves.Spawn(wave, 0)
	assert.False(t, ok)
	assert.Equal(t, 5, wave.Remaining)
	assert.Empty(t, h.ecs.Tanks)
}

func TestWaveSystem_GrassDoesNotBlockSpawn(t *testing.T) {
	h := newHarness()
	for col := 0; col < config.GridWidth; col++ {
		h.terrain(col, 0, defs.TerrainGrass)
	}
	_, ok := h.waves.Spawn(newWave(1), 0)
	assert.True(t, ok)
}

func TestWaveSystem_SpawnInitial(t *testing.T) {
	h := newHarness()
	wave := newWave(2)

	n := h.waves.SpawnInitial(wave, 50)

	assert.Equal(t, 2, n)
	assert.Equal(t, 0, wave.Remaining)
	assert.Equal(t, 2, h.ecs.EnemyCount())
}

func TestWaveSystem_UpdateHonoursDelayAndCap(t *testing.T) {
	h := newHarness()
	wave := newWave(10)

	h.waves.Update(wave, config.EnemySpawnDelayMs-1)
	assert.Equal(t, 0, h.ecs.EnemyCount())

	h.waves.Update(wave, config.EnemySpawnDelayMs)
	assert.Equal(t, 1, h.ecs.EnemyCount())

	for i := 0; i < config.MaxEnemiesOnScreen; i++ {
		h.tanks.CreateTank(float64(i*80), 400, defs.ClassNormal, component.FactionEnemy, component.DirDown)
	}
	before := wave.Remaining
	h.waves.Update(wave, 100000)
	assert.Equal(t, before, wave.Remaining)
}

func TestWaveSystem_EmptyQuotaIsIdle(t *testing.T) {
	h := newHarness()
	wave := newWave(0)
	h.waves.Update(wave, 100000)
	_, ok := h.waves.Spawn(wave, 100000)
	assert.False(t, ok)
	assert.Empty(t, h.ecs.Tanks)
}
