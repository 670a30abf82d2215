// internal/system/wave.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"

	"github.com/rs/zerolog"
)

// WaveSystem keeps the arena topped up with enemies until the level quota
// runs out.
type WaveSystem struct {
	ecs        *entity.ECS
	collisions *CollisionSystem
	tanks      *TankSystem
	rng        *utils.PRNGService
	log        zerolog.Logger
}

func NewWaveSystem(ecs *entity.ECS, collisions *CollisionSystem, tanks *TankSystem, rng *utils.PRNGService, log zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		collisions: collisions,
		tanks:      tanks,
		rng:        rng,
		log:        log,
	}
}

// ChooseType draws an enemy class by the wave's weights.
func (s *WaveSystem) ChooseType(wave *component.Wave) defs.TankClass {
	return s.rng.ChooseWeighted(wave.Weights)
}

// FindSpawnPosition tries a bounded number of random top-row cells and
// returns the first one clear of blocking terrain and tanks.
func (s *WaveSystem) FindSpawnPosition() (float64, float64, bool) {
	for i := 0; i < config.SpawnPlacementTries; i++ {
		x, y := utils.TileToPixel(s.rng.Intn(config.GridWidth), 0)
		r := utils.NewRect(x, y, config.TankSize, config.TankSize)
		if s.collisions.SpawnFree(r) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// Spawn places one enemy and takes it off the quota. A failed placement
// search leaves everything untouched.
func (s *WaveSystem) Spawn(wave *component.Wave, now int64) (types.EntityID, bool) {
	if wave == nil || wave.Remaining <= 0 {
		return 0, false
	}
	class := s.ChooseType(wave)
	x, y, ok := s.FindSpawnPosition()
	if !ok {
		s.log.Trace().Str("class", string(class)).Msg("no free spawn cell, deferring")
		return 0, false
	}
	id := s.tanks.CreateTank(x, y, class, component.FactionEnemy, component.DirDown)
	wave.Remaining--
	wave.LastSpawn = now
	s.log.Debug().Str("class", string(class)).Float64("x", x).Int("remaining", wave.Remaining).Msg("enemy spawned")
	return id, true
}

// SpawnInitial eagerly places the opening batch, bounded by the quota.
func (s *WaveSystem) SpawnInitial(wave *component.Wave, now int64) int {
	n := 0
	for i := 0; i < config.InitialEnemyBatch && wave.Remaining > 0; i++ {
		if _, ok := s.Spawn(wave, now); ok {
			n++
		}
	}
	wave.LastSpawn = now
	return n
}

// Update spawns one enemy when there is room on screen, quota left and the
// spawn delay has passed. The timer only restarts on a successful spawn, so
// a crowded top row retries on the next tick.
func (s *WaveSystem) Update(wave *component.Wave, now int64) {
	if wave == nil || wave.Remaining <= 0 {
		return
	}
	if s.ecs.EnemyCount() >= config.MaxEnemiesOnScreen {
		return
	}
	if now-wave.LastSpawn < config.EnemySpawnDelayMs {
		return
	}
	s.Spawn(wave, now)
}
