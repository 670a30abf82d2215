package component

import (
	"tank-battle/internal/defs"
	"tank-battle/internal/utils"
)

// Terrain is one tile of terrain.
type Terrain struct {
	Rect         utils.Rect
	Type         defs.TerrainType
	Health       int
	Destructible bool
}

// NewTerrain creates a full-health tile of the given type at a grid cell.
func NewTerrain(col, row int, t defs.TerrainType) *Terrain {
	def := defs.TerrainFor(t)
	return &Terrain{
		Rect:         utils.TileRect(col, row),
		Type:         t,
		Health:       def.Health,
		Destructible: def.Destructible,
	}
}

// Blocks reports whether the tile stops tanks and bullets.
func (t *Terrain) Blocks() bool {
	return !t.Type.Passable()
}
