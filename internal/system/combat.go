// internal/system/combat.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/event"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// Where a player lands after losing a life to a bullet: three tiles left of
// the base, one row up from the bottom.
var (
	RespawnX      = float64((config.GridWidth/2-3)*config.TileSize - config.TankSize/2)
	RespawnY      = float64(config.ScreenHeight - config.TileSize - config.TankSize)
	RespawnFacing = component.DirRight
)

// EffectiveCooldown is the profile shoot delay, divided while rapid fire is
// on.
func (s *TankSystem) EffectiveCooldown(t *component.Tank, now int64) int64 {
	if t.Effects.RapidFire(now) {
		return int64(float64(t.Profile.ShootDelayMs) / config.RapidFireMultiplier)
	}
	return t.Profile.ShootDelayMs
}

// Shoot fires a bullet from the tank's leading edge unless the cooldown has
// not elapsed.
func (s *TankSystem) Shoot(id types.EntityID, now int64) bool {
	t, ok := s.ecs.Tanks[id]
	if !ok {
		return false
	}
	if t.HasShot && now-t.LastShot < s.EffectiveCooldown(t, now) {
		return false
	}

	bid := s.ecs.NewEntity()
	s.ecs.Bullets[bid] = &component.Bullet{
		Rect:      muzzleRect(t.Rect, t.Facing),
		Direction: t.Facing,
		Faction:   t.Faction,
		Speed:     t.Profile.BulletSpeed,
		Owner:     id,
	}
	t.LastShot = now
	t.HasShot = true

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BulletFired,
		Data: event.BulletFiredData{Shooter: id, Faction: t.Faction},
	})
	return true
}

// muzzleRect centres a bullet on the tank's leading edge, just outside it.
func muzzleRect(r utils.Rect, dir component.Direction) utils.Rect {
	cx, cy := r.Center()
	const b = config.BulletSize
	switch dir {
	case component.DirUp:
		return utils.NewRect(cx-b/2, r.Y-b, b, b)
	case component.DirDown:
		return utils.NewRect(cx-b/2, r.Bottom(), b, b)
	case component.DirLeft:
		return utils.NewRect(r.X-b, cy-b/2, b, b)
	default:
		return utils.NewRect(r.Right(), cy-b/2, b, b)
	}
}

// ReceiveHit applies a bullet hit and reports whether the tank was
// destroyed. An active shield absorbs the hit. Enemies die outright. The
// player loses a life and either respawns at the staging position under a
// fresh shield or is removed, ending the run. An enemy parked on the staging
// position meets the player under the contact rule straight away.
func (s *TankSystem) ReceiveHit(id types.EntityID, now int64) bool {
	t, ok := s.ecs.Tanks[id]
	if !ok || !t.Alive {
		return false
	}
	if t.Effects.Shielded(now) {
		return false
	}

	if !t.IsPlayer() {
		s.game.OnEnemyDestroyed(id)
		return true
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
	if s.game.LoseLife(now) {
		t.Rect = utils.NewRect(RespawnX, RespawnY, config.TankSize, config.TankSize)
		t.PrevRect = t.Rect
		t.Facing = RespawnFacing
		t.Effects.ShieldEnd = now + defs.PowerUpFor(defs.PowerUpShield).DurationMs
		s.SettleContacts(id)
		return true
	}
	s.destroyPlayer(id)
	return true
}

// ApplyPowerUp starts the tank-side effect of a power-up. Base shield is
// run-wide and handled by the orchestrator, so it is ignored here.
func (s *TankSystem) ApplyPowerUp(id types.EntityID, kind defs.PowerUpType, now int64) {
	t, ok := s.ecs.Tanks[id]
	if !ok {
		return
	}
	end := now + defs.PowerUpFor(kind).DurationMs
	switch kind {
	case defs.PowerUpShield:
		t.Effects.ShieldEnd = end
	case defs.PowerUpSpeed:
		t.Effects.SpeedBoostEnd = end
	case defs.PowerUpRapidFire:
		t.Effects.RapidFireEnd = end
	}
}
