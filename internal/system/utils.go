// internal/system/utils.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/event"
	"tank-battle/internal/interfaces"
	"tank-battle/internal/types"
	"tank-battle/internal/utils"
)

// ApplyDamage takes one point of health from a terrain tile. Indestructible
// tiles ignore it. A tile at zero health is removed; losing the base ends
// the run on the spot. by names the shooting tank for the event only; it may
// already be gone. Reports whether the tile was destroyed.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, game interfaces.GameContext, tileID, by types.EntityID) bool {
	tile, ok := ecs.Terrain[tileID]
	if !ok || !tile.Destructible {
		return false
	}

	tile.Health--
	if tile.Health > 0 {
		return false
	}

	delete(ecs.Terrain, tileID)
	col, row := utils.PixelToTile(tile.Rect.X, tile.Rect.Y)
	dispatcher.Dispatch(event.Event{
		Type: event.TerrainDestroyed,
		Data: event.TerrainDestroyedData{Type: tile.Type, Col: col, Row: row, By: by},
	})

	if tile.Type == defs.TerrainBase {
		dispatcher.Dispatch(event.Event{Type: event.BaseDestroyed})
		game.EndRun(component.ReasonBaseDestroyed)
	}
	return true
}
