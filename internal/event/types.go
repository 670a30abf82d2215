// internal/event/types.go
package event

import (
	"tank-battle/internal/component"
	"tank-battle/internal/defs"
	"tank-battle/internal/types"
)

const (
	BulletFired      EventType = "BulletFired"
	EnemyDestroyed   EventType = "EnemyDestroyed"
	PlayerHit        EventType = "PlayerHit"
	PlayerDestroyed  EventType = "PlayerDestroyed"
	TerrainDestroyed EventType = "TerrainDestroyed"
	BaseDestroyed    EventType = "BaseDestroyed"
	PowerUpSpawned   EventType = "PowerUpSpawned"
	PowerUpCollected EventType = "PowerUpCollected"
	LevelStarted     EventType = "LevelStarted"
	LevelCompleted   EventType = "LevelCompleted"
	GameOver         EventType = "GameOver"
)

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{
	BulletFired, EnemyDestroyed, PlayerHit, PlayerDestroyed, TerrainDestroyed,
	BaseDestroyed, PowerUpSpawned, PowerUpCollected, LevelStarted,
	LevelCompleted, GameOver,
}

// Payloads carried in Event.Data.

type BulletFiredData struct {
	Shooter types.EntityID
	Faction component.Faction
}

type EnemyDestroyedData struct {
	Enemy  types.EntityID
	Class  defs.TankClass
	Points int
	X, Y   float64 // centre of the destroyed tank
}

type TerrainDestroyedData struct {
	Type     defs.TerrainType
	Col, Row int
	By       types.EntityID // tank whose bullet broke the tile
}

type PowerUpData struct {
	Type defs.PowerUpType
}

type LevelData struct {
	Level int
}

type GameOverData struct {
	Reason component.TerminalReason
	Score  int
	Level  int
}
