package interfaces

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Drawable is anything a Resources implementation hands back for drawing.
// Only the bounds are relied upon; a missing resource is still a Drawable.
type Drawable interface {
	Bounds() image.Rectangle
}

// Resources looks up assets by symbolic key.
type Resources interface {
	// Image returns the drawable for category/key, e.g. ("tank", "fast_up").
	// Unknown keys yield a placeholder, never nil.
	Image(category, key string) Drawable
	Font(size int) font.Face
	PlaySound(name string)
}

// Surface is a render target.
type Surface interface {
	DrawSprite(img Drawable, x, y float64)
	FillRect(x, y, w, h float64, clr color.Color)
}
