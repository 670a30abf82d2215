package app

import (
	"tank-battle/internal/defs"
	"tank-battle/internal/event"
	"tank-battle/internal/interfaces"
)

// SoundListener plays an effect through the resource façade for each
// gameplay event that has one.
type SoundListener struct {
	res interfaces.Resources
}

func NewSoundListener(res interfaces.Resources) *SoundListener {
	return &SoundListener{res: res}
}

// Attach subscribes to every event.
func (l *SoundListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l)
}

func (l *SoundListener) OnEvent(e event.Event) {
	if name := SoundFor(e); name != "" {
		l.res.PlaySound(name)
	}
}

// SoundFor returns the sound for an event, or "" for silent ones.
func SoundFor(e event.Event) string {
	switch e.Type {
	case event.BulletFired:
		return defs.SoundShoot
	case event.EnemyDestroyed, event.BaseDestroyed:
		return defs.SoundExplosion
	case event.PlayerHit, event.PlayerDestroyed:
		return defs.SoundPlayerHit
	case event.TerrainDestroyed:
		if d, ok := e.Data.(event.TerrainDestroyedData); ok && d.Type == defs.TerrainBrick {
			return defs.SoundBrickBreak
		}
	case event.PowerUpSpawned:
		return defs.SoundPowerUpAppear
	case event.PowerUpCollected:
		return defs.SoundPowerUpPickup
	case event.LevelCompleted:
		return defs.SoundLevelComplete
	case event.GameOver:
		return defs.SoundGameOver
	}
	return ""
}
