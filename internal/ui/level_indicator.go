package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"tank-battle/internal/config"
	"tank-battle/internal/utils"
)

// LevelIndicator shows the level number in roman numerals.
type LevelIndicator struct {
	X, Y int
}

func NewLevelIndicator(x, y int) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// Draw centres the numeral on X.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level int, face font.Face) {
	s := utils.ToRoman(level)
	if s == "" {
		return
	}
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, i.X-w/2, i.Y, config.ActiveColor)
}
