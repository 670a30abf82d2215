package component

import (
	"tank-battle/internal/defs"
	"tank-battle/internal/utils"
)

// Faction decides who can damage whom.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// Tank is a player or enemy tank.
type Tank struct {
	Rect     utils.Rect
	PrevRect utils.Rect // position when the current tick began, used for rollback
	Facing   Direction
	Faction  Faction
	Profile  defs.TankClassProfile
	LastShot int64
	Effects  StatusEffects
	Alive    bool
	// HasShot is false until the first shot so that a tank may fire at time 0.
	HasShot bool
}

// Class returns the tank's class name, used for resource keys.
func (t *Tank) Class() defs.TankClass {
	return t.Profile.Class
}

// IsPlayer reports whether the tank belongs to the player.
func (t *Tank) IsPlayer() bool {
	return t.Faction == FactionPlayer
}
