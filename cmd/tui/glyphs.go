package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font"

	"tank-battle/internal/config"
	"tank-battle/internal/interfaces"
)

// Each terminal cell stands for cellW×cellH arena pixels: a tile is two
// cells wide and one tall, which keeps it roughly square on screen.
const (
	cellW = config.TileSize / 2
	cellH = config.TileSize
)

// glyph is the terminal stand-in for an image.
type glyph struct {
	r     rune
	style tcell.Style
	w, h  int // arena pixels
}

func (g glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer  = styleBase.Foreground(tcell.ColorYellow).Bold(true)
	styleMissing = styleBase.Background(tcell.ColorFuchsia)
)

var directionRunes = map[string]rune{"up": '^', "down": 'v', "left": '<', "right": '>'}

// glyphResources implements the resource façade with characters.
type glyphResources struct {
	glyphs map[string]glyph
	played []string
}

var _ interfaces.Resources = (*glyphResources)(nil)

func newGlyphResources() *glyphResources {
	r := &glyphResources{glyphs: make(map[string]glyph)}
	tankStyles := map[string]tcell.Style{
		"player": stylePlayer,
		"normal": styleBase.Foreground(tcell.ColorSilver),
		"fast":   styleBase.Foreground(tcell.ColorLime),
		"heavy":  styleBase.Foreground(tcell.ColorMaroon),
		"elite":  styleBase.Foreground(tcell.ColorRed).Bold(true),
	}
	for class, st := range tankStyles {
		for dir, ch := range directionRunes {
			r.glyphs["tank_"+class+"_"+dir] = glyph{ch, st, config.TankSize, config.TankSize}
		}
	}
	for dir := range directionRunes {
		r.glyphs["bullet_player_"+dir] = glyph{'•', stylePlayer, config.BulletSize, config.BulletSize}
		r.glyphs["bullet_enemy_"+dir] = glyph{'•', styleBase, config.BulletSize, config.BulletSize}
	}
	r.glyphs["terrain_brick"] = glyph{'▒', styleBase.Foreground(tcell.ColorOrangeRed), config.TileSize, config.TileSize}
	r.glyphs["terrain_steel"] = glyph{'█', styleBase.Foreground(tcell.ColorGray), config.TileSize, config.TileSize}
	r.glyphs["terrain_water"] = glyph{'~', styleBase.Foreground(tcell.ColorAqua), config.TileSize, config.TileSize}
	r.glyphs["terrain_grass"] = glyph{'"', styleBase.Foreground(tcell.ColorGreen), config.TileSize, config.TileSize}
	r.glyphs["terrain_base"] = glyph{'@', styleBase.Foreground(tcell.ColorGold).Bold(true), config.TileSize, config.TileSize}
	r.glyphs["powerup_shield"] = glyph{'P', styleBase.Foreground(tcell.ColorAqua).Bold(true), config.PowerUpSize, config.PowerUpSize}
	r.glyphs["powerup_speed"] = glyph{'S', styleBase.Foreground(tcell.ColorLime).Bold(true), config.PowerUpSize, config.PowerUpSize}
	r.glyphs["powerup_rapid_fire"] = glyph{'R', styleBase.Foreground(tcell.ColorYellow).Bold(true), config.PowerUpSize, config.PowerUpSize}
	r.glyphs["powerup_base_shield"] = glyph{'B', styleBase.Foreground(tcell.ColorSilver).Bold(true), config.PowerUpSize, config.PowerUpSize}
	return r
}

func (r *glyphResources) Image(category, key string) interfaces.Drawable {
	if g, ok := r.glyphs[category+"_"+key]; ok {
		return g
	}
	return glyph{'?', styleMissing, 32, 32}
}

// Font is meaningless in a terminal.
func (r *glyphResources) Font(size int) font.Face { return nil }

// PlaySound remembers the last few sounds; the status line flashes them.
func (r *glyphResources) PlaySound(name string) {
	r.played = append(r.played, name)
	if len(r.played) > 3 {
		r.played = r.played[len(r.played)-3:]
	}
}

// cellSurface paints onto a tcell screen, one cell per cellW×cellH pixels.
type cellSurface struct {
	screen tcell.Screen
}

var _ interfaces.Surface = cellSurface{}

func (s cellSurface) DrawSprite(img interfaces.Drawable, x, y float64) {
	g, ok := img.(glyph)
	if !ok {
		b := img.Bounds()
		g = glyph{'?', styleMissing, b.Dx(), b.Dy()}
	}
	c0, r0, c1, r1 := cellSpan(x, y, float64(g.w), float64(g.h))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, g.r, nil, g.style)
		}
	}
}

func (s cellSurface) FillRect(x, y, w, h float64, clr color.Color) {
	r, g, b, _ := clr.RGBA()
	st := styleBase.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
	c0, r0, c1, r1 := cellSpan(x, y, w, h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// cellSpan returns the inclusive cell range covered by a pixel rectangle.
// Anything smaller than a cell still gets the cell under its centre.
func cellSpan(x, y, w, h float64) (c0, r0, c1, r1 int) {
	if w < cellW || h < cellH {
		cx, cy := int(x+w/2)/cellW, int(y+h/2)/cellH
		return cx, cy, cx, cy
	}
	c0, r0 = int(x+0.5)/cellW, int(y+0.5)/cellH
	c1, r1 = int(x+w-0.5)/cellW, int(y+h-0.5)/cellH
	return
}
