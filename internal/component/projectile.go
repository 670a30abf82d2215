// internal/component/projectile.go
package component

import (
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// Bullet is a projectile in flight. Owner is a handle only; it is reported
// with the tiles the bullet breaks and never used to reach the shooter.
type Bullet struct {
	Rect      utils.Rect
	Direction Direction
	Faction   Faction
	Speed     float64
	Owner     types.EntityID
}
