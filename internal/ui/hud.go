// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"tank-battle/internal/app"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
)

const (
	hudMargin     = 12
	hudLineHeight = 26
)

// HUD is the side panel to the right of the arena.
type HUD struct {
	font      font.Face
	titleFont font.Face
	level     *LevelIndicator
}

func NewHUD(face, titleFace font.Face) *HUD {
	return &HUD{
		font:      face,
		titleFont: titleFace,
		level:     NewLevelIndicator(config.ScreenWidth+config.HUDWidth/2, config.ScreenHeight-hudMargin),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	x := float32(config.ScreenWidth)
	vector.DrawFilledRect(screen, x, 0, config.HUDWidth, config.ScreenHeight, config.HUDColor, false)
	vector.StrokeLine(screen, x, 0, x, config.ScreenHeight, 2, config.TextDimColor, false)

	tx := config.ScreenWidth + hudMargin
	y := hudMargin + hudLineHeight
	line := func(s string) {
		text.Draw(screen, s, h.font, tx, y, config.TextLightColor)
		y += hudLineHeight
	}

	line(fmt.Sprintf("Lives: %d", g.Lives()))
	line(fmt.Sprintf("Score: %d", g.Score()))
	line(fmt.Sprintf("Level: %d", g.Level()))
	line(fmt.Sprintf("Enemies: %d", g.EnemiesOnScreen()))
	line(fmt.Sprintf("Quota: %d", g.Quota()))

	y += hudLineHeight / 2
	text.Draw(screen, "Power-ups", h.font, tx, y, config.TextDimColor)
	y += hudLineHeight
	for _, e := range g.ActiveEffects() {
		def := defs.PowerUpFor(e.Type)
		clr := config.PowerUpColors[string(e.Type)]
		text.Draw(screen, fmt.Sprintf("%s %ds", def.Label, e.Seconds()), h.font, tx, y, clr)
		y += hudLineHeight
	}

	h.level.Draw(screen, g.Level(), h.titleFont)
}
