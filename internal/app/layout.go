// internal/app/layout.go
package app

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

type cell struct{ col, row int }

// BaseCell is where the base sits: bottom row, centre column.
var BaseCell = cell{config.GridWidth / 2, config.GridHeight - 1}

// baseWallCells are the protective bricks: left, right, up, up-left,
// up-right of the base.
func baseWallCells() []cell {
	b := BaseCell
	return []cell{
		{b.col - 1, b.row},
		{b.col + 1, b.row},
		{b.col, b.row - 1},
		{b.col - 1, b.row - 1},
		{b.col + 1, b.row - 1},
	}
}

// AddTerrain places a tile at a grid cell and returns its id.
func (g *Game) AddTerrain(col, row int, t defs.TerrainType) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Terrain[id] = component.NewTerrain(col, row, t)
	return id
}

func (g *Game) placeBase() {
	g.AddTerrain(BaseCell.col, BaseCell.row, defs.TerrainBase)
	g.baseWalls = g.baseWalls[:0]
	for _, c := range baseWallCells() {
		g.baseWalls = append(g.baseWalls, g.AddTerrain(c.col, c.row, defs.TerrainBrick))
	}
}

// fillTerrain scatters random tiles over the upper rows, leaving the top
// corners open for enemies and the base surroundings untouched.
func (g *Game) fillTerrain(density float64) {
	protected := make(map[cell]bool)
	protected[BaseCell] = true
	for _, c := range baseWallCells() {
		protected[c] = true
	}

	for row := 0; row < config.GridHeight-2; row++ {
		for col := 0; col < config.GridWidth; col++ {
			if row < 2 && (col < 2 || col > config.GridWidth-3) {
				continue
			}
			if protected[cell{col, row}] {
				continue
			}
			if g.Rng.Chance(density) {
				g.AddTerrain(col, row, utils.Pick(g.Rng, defs.RandomTerrainTypes))
			}
		}
	}
}

// createPlayer puts a new player tank on its spawn cell. A respawn gets a
// short grace shield and meets any enemy already on the cell.
func (g *Game) createPlayer(respawn bool, now int64) types.EntityID {
	x, y := utils.TileToPixel(config.PlayerSpawnX, config.PlayerSpawnY)
	id := g.TankSystem.CreateTank(x, y, defs.ClassPlayer, component.FactionPlayer, component.DirUp)
	if respawn {
		g.ECS.Tanks[id].Effects.ShieldEnd = now + config.RespawnShieldMs
		g.TankSystem.SettleContacts(id)
	}
	return id
}
