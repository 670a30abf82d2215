package defs

// TerrainType is the kind of a terrain tile.
type TerrainType string

const (
	TerrainBrick TerrainType = "brick"
	TerrainSteel TerrainType = "steel"
	TerrainWater TerrainType = "water"
	TerrainGrass TerrainType = "grass"
	TerrainBase  TerrainType = "base"
)

// RandomTerrainTypes are the kinds the density fill chooses from.
var RandomTerrainTypes = []TerrainType{TerrainBrick, TerrainSteel, TerrainWater, TerrainGrass}

// TerrainDefinition holds the static properties of a terrain kind.
type TerrainDefinition struct {
	Health       int
	Destructible bool
}

// indestructibleHealth mirrors config.IndestructibleHealth; defs stays free
// of the config package.
const indestructibleHealth = 999999

var terrainDefs = map[TerrainType]TerrainDefinition{
	TerrainBrick: {Health: 1, Destructible: true},
	TerrainSteel: {Health: 4, Destructible: false},
	TerrainWater: {Health: indestructibleHealth, Destructible: false},
	TerrainGrass: {Health: indestructibleHealth, Destructible: false},
	TerrainBase:  {Health: 1, Destructible: true},
}

// TerrainFor returns the definition of a terrain kind.
func TerrainFor(t TerrainType) TerrainDefinition {
	return terrainDefs[t]
}

// Passable reports whether tanks and bullets travel through the kind.
func (t TerrainType) Passable() bool {
	return t == TerrainGrass
}
