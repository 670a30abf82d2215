// component/powerup.go
package component

import (
	"tank-battle/internal/defs"
	"tank-battle/internal/utils"
)

// PowerUp is an uncollected power-up lying in the arena.
type PowerUp struct {
	Rect      utils.Rect
	Type      defs.PowerUpType
	SpawnTime int64
	ExpiresAt int64
}

// Expired reports whether the power-up should vanish at now.
func (p *PowerUp) Expired(now int64) bool {
	return now >= p.ExpiresAt
}
