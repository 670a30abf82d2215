package app

import (
	"tank-battle/internal/component"
	"tank-battle/internal/defs"
	"tank-battle/internal/utils"
)

// ApplyBaseShield turns every live brick around the base into steel and
// (re)starts the shield timer. Applying it again while active just extends
// the timer.
func (g *Game) ApplyBaseShield(now int64) {
	g.baseShieldEnd = now + defs.PowerUpFor(defs.PowerUpBaseShield).DurationMs
	g.swapBaseWalls(defs.TerrainBrick, defs.TerrainSteel)
	g.log.Debug().Int64("until", g.baseShieldEnd).Msg("base shield up")
}

// TickBaseShield reverts the steel walls to fresh bricks once the shield
// has run out. Before that it does nothing.
func (g *Game) TickBaseShield(now int64) {
	if g.baseShieldEnd <= 0 || now < g.baseShieldEnd {
		return
	}
	g.swapBaseWalls(defs.TerrainSteel, defs.TerrainBrick)
	g.baseShieldEnd = 0
}

// swapBaseWalls replaces each tracked wall of kind from with a full-health
// tile of kind to at the same cell. Destroyed walls stay destroyed.
func (g *Game) swapBaseWalls(from, to defs.TerrainType) {
	for i, id := range g.baseWalls {
		tile, ok := g.ECS.Terrain[id]
		if !ok || tile.Type != from {
			continue
		}
		col, row := utils.PixelToTile(tile.Rect.X, tile.Rect.Y)
		delete(g.ECS.Terrain, id)
		g.baseWalls[i] = g.AddTerrain(col, row, to)
	}
}

// BaseWalls returns the tiles currently guarding the base.
func (g *Game) BaseWalls() []*component.Terrain {
	out := make([]*component.Terrain, 0, len(g.baseWalls))
	for _, id := range g.baseWalls {
		if t, ok := g.ECS.Terrain[id]; ok {
			out = append(out, t)
		}
	}
	return out
}
