// internal/component/status_effect.go
package component

// StatusEffects holds absolute expiry timestamps (simulation ms) for the
// timed tank effects. Zero means inactive.
type StatusEffects struct {
	ShieldEnd     int64
	SpeedBoostEnd int64
	RapidFireEnd  int64
}

// Shielded reports whether a shield covers now.
func (s StatusEffects) Shielded(now int64) bool { return now < s.ShieldEnd }

// Boosted reports whether a speed boost covers now.
func (s StatusEffects) Boosted(now int64) bool { return now < s.SpeedBoostEnd }

// RapidFire reports whether rapid fire covers now.
func (s StatusEffects) RapidFire(now int64) bool { return now < s.RapidFireEnd }

// Expire resets every timestamp that has passed to the inactive sentinel.
func (s *StatusEffects) Expire(now int64) {
	if now >= s.ShieldEnd {
		s.ShieldEnd = 0
	}
	if now >= s.SpeedBoostEnd {
		s.SpeedBoostEnd = 0
	}
	if now >= s.RapidFireEnd {
		s.RapidFireEnd = 0
	}
}
