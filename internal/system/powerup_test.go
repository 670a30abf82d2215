package system

import (
	"testing"

	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/event"
	"tank-battle/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerUpSystem_Expiry(t *testing.T) {
	h := newHarness()
	h.powerUps.Reset(0)
	id := h.powerUps.Spawn(defs.PowerUpShield, 100, 100, 0)
	assert.Equal(t, int64(config.PowerUpLifetimeMs), h.ecs.PowerUps[id].ExpiresAt)

	h.powerUps.Update(config.PowerUpLifetimeMs - 1)
	assert.Contains(t, h.ecs.PowerUps, id)
	h.powerUps.Update(config.PowerUpLifetimeMs)
	assert.NotContains(t, h.ecs.PowerUps, id)
}

func TestPowerUpSystem_DropRate(t *testing.T) {
	h := newHarness()
	drops := 0
	for i := 0; i < 2000; i++ {
		if id, ok := h.powerUps.MaybeDrop(220, 320, 0); ok {
			drops++
			p := h.ecs.PowerUps[id]
			cx, cy := p.Rect.Center()
			require.Equal(t, 220.0, cx)
			require.Equal(t, 320.0, cy)
			h.powerUps.Remove(id)
		}
	}
	assert.InDelta(t, 600, drops, 100)
}

func TestPowerUpSystem_FieldSpawner(t *testing.T) {
	h := newHarness()
	for col := 0; col < config.GridWidth; col += 2 {
		for row := 0; row < config.GridHeight; row++ {
			h.terrain(col, row, defs.TerrainSteel)
		}
	}
	h.powerUps.Reset(0)

	for now := int64(0); now < config.PowerUpSpawnDelayMs; now += 16 {
		h.powerUps.Update(now)
	}
	require.Empty(t, h.ecs.PowerUps)

	now := int64(config.PowerUpSpawnDelayMs)
	for i := 0; i < 5000 && len(h.ecs.PowerUps) == 0; i++ {
		h.powerUps.Update(now)
		now += 16
	}
	require.Len(t, h.ecs.PowerUps, 1)
	for _, p := range h.ecs.PowerUps {
		_, blocked := h.collisions.BlockingTerrainAt(p.Rect)
		assert.False(t, blocked)
		assert.True(t, p.Rect.Within(utils.ArenaBounds()))
	}
	assert.Contains(t, h.eventTypes(), event.PowerUpSpawned)
}
