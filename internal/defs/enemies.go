package defs

// TankClass identifies a tank's combat profile. Enemies use the four
// subtypes; the player has its own class.
type TankClass string

const (
	ClassPlayer TankClass = "player"
	ClassNormal TankClass = "normal"
	ClassFast   TankClass = "fast"
	ClassHeavy  TankClass = "heavy"
	ClassElite  TankClass = "elite"
)

// EnemyClasses lists the enemy subtypes in table order.
var EnemyClasses = []TankClass{ClassNormal, ClassFast, ClassHeavy, ClassElite}

// TankClassProfile holds the static combat numbers for one class. It is
// resolved once when a tank is created and stored on the tank by value.
type TankClassProfile struct {
	Class        TankClass `json:"class" mapstructure:"class"`
	Speed        float64   `json:"speed" mapstructure:"speed"`
	BulletSpeed  float64   `json:"bullet_speed" mapstructure:"bullet_speed"`
	ShootDelayMs int64     `json:"shoot_delay" mapstructure:"shoot_delay"`
	Health       int       `json:"health" mapstructure:"health"`
	Points       int       `json:"points" mapstructure:"points"`
}

var tankProfiles = map[TankClass]TankClassProfile{
	ClassPlayer: {Class: ClassPlayer, Speed: 4, BulletSpeed: 8, ShootDelayMs: 500, Health: 3, Points: 0},
	ClassNormal: {Class: ClassNormal, Speed: 3, BulletSpeed: 8, ShootDelayMs: 1000, Health: 1, Points: 100},
	ClassFast:   {Class: ClassFast, Speed: 6, BulletSpeed: 10, ShootDelayMs: 1200, Health: 1, Points: 200},
	ClassHeavy:  {Class: ClassHeavy, Speed: 2, BulletSpeed: 6, ShootDelayMs: 1500, Health: 3, Points: 300},
	ClassElite:  {Class: ClassElite, Speed: 4, BulletSpeed: 12, ShootDelayMs: 800, Health: 2, Points: 500},
}

// ProfileFor returns the profile for a class. Unknown classes fall back to
// the normal enemy profile, keeping the requested class name.
func ProfileFor(class TankClass) TankClassProfile {
	if p, ok := tankProfiles[class]; ok {
		return p
	}
	p := tankProfiles[ClassNormal]
	p.Class = class
	return p
}
