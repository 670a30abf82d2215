package app

import "tank-battle/internal/defs"

// EffectStatus is one running power-up effect, for HUDs.
type EffectStatus struct {
	Type        defs.PowerUpType
	RemainingMs int64
}

// Seconds returns the remaining time in whole seconds.
func (e EffectStatus) Seconds() int64 {
	return e.RemainingMs / 1000
}

// ActiveEffects lists the effects covering the current time, in drop-table
// order.
func (g *Game) ActiveEffects() []EffectStatus {
	var out []EffectStatus
	add := func(t defs.PowerUpType, end int64) {
		if end > g.now {
			out = append(out, EffectStatus{Type: t, RemainingMs: end - g.now})
		}
	}
	if p := g.Player(); p != nil {
		add(defs.PowerUpShield, p.Effects.ShieldEnd)
		add(defs.PowerUpSpeed, p.Effects.SpeedBoostEnd)
		add(defs.PowerUpRapidFire, p.Effects.RapidFireEnd)
	}
	add(defs.PowerUpBaseShield, g.baseShieldEnd)
	return out
}
