package defs

// PowerUpType is the kind of a power-up.
type PowerUpType string

const (
	PowerUpShield     PowerUpType = "shield"
	PowerUpSpeed      PowerUpType = "speed"
	PowerUpRapidFire  PowerUpType = "rapid_fire"
	PowerUpBaseShield PowerUpType = "base_shield"
)

// PowerUpTypes is the drop table; drops pick uniformly from it.
var PowerUpTypes = []PowerUpType{PowerUpShield, PowerUpSpeed, PowerUpRapidFire, PowerUpBaseShield}

// PowerUpDefinition holds the effect duration and HUD label of a power-up.
type PowerUpDefinition struct {
	DurationMs int64
	Symbol     string
	Label      string
}

var powerUpDefs = map[PowerUpType]PowerUpDefinition{
	PowerUpShield:     {DurationMs: 5000, Symbol: "P", Label: "Shield"},
	PowerUpSpeed:      {DurationMs: 10000, Symbol: "S", Label: "Speed"},
	PowerUpRapidFire:  {DurationMs: 10000, Symbol: "R", Label: "Rapid fire"},
	PowerUpBaseShield: {DurationMs: 15000, Symbol: "B", Label: "Base shield"},
}

// PowerUpFor returns the definition of a power-up kind.
func PowerUpFor(t PowerUpType) PowerUpDefinition {
	return powerUpDefs[t]
}
