// internal/utils/coords.go
package utils

import (
	"math"

	"tank-battle/internal/config"
)

// TileToPixel returns the top-left pixel of a grid cell.
func TileToPixel(col, row int) (float64, float64) {
	return float64(col * config.TileSize), float64(row * config.TileSize)
}

// PixelToTile returns the grid cell containing a pixel.
func PixelToTile(x, y float64) (int, int) {
	return int(math.Floor(x / config.TileSize)), int(math.Floor(y / config.TileSize))
}

// SnapToGrid rounds a pixel position to the nearest tile corner.
func SnapToGrid(x, y float64) (float64, float64) {
	return math.Round(x/config.TileSize) * config.TileSize, math.Round(y/config.TileSize) * config.TileSize
}

// TileRect returns the rectangle covered by a grid cell.
func TileRect(col, row int) Rect {
	x, y := TileToPixel(col, row)
	return NewRect(x, y, config.TileSize, config.TileSize)
}

// ArenaBounds is the playable area in pixels.
func ArenaBounds() Rect {
	return NewRect(0, 0, config.ScreenWidth, config.ScreenHeight)
}

// InGrid reports whether a cell lies inside the arena grid.
func InGrid(col, row int) bool {
	return col >= 0 && col < config.GridWidth && row >= 0 && row < config.GridHeight
}
