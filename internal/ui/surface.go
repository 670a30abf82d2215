package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-battle/internal/interfaces"
)

// Surface draws onto an ebiten image.
type Surface struct {
	Screen *ebiten.Image
}

var _ interfaces.Surface = Surface{}

// DrawSprite draws img with its top-left corner at (x, y). Drawables that are
// not ebiten images are shown as their bounding box in the placeholder
// colour.
func (s Surface) DrawSprite(img interfaces.Drawable, x, y float64) {
	if ei, ok := img.(*ebiten.Image); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		s.Screen.DrawImage(ei, op)
		return
	}
	b := img.Bounds()
	vector.DrawFilledRect(s.Screen, float32(x), float32(y), float32(b.Dx()), float32(b.Dy()), color.RGBA{255, 0, 255, 255}, false)
}

func (s Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.Screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
