// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"tank-battle/internal/config"
)

// MenuButton is a clickable labelled rectangle.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	hover   color.RGBA
	fgColor color.Color
	font    font.Face
}

// NewMenuButton creates a button centred horizontally on cx.
func NewMenuButton(cx, y, w, h int, label string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:    image.Rect(cx-w/2, y, cx+w/2, y+h),
		Text:    label,
		bgColor: config.ButtonColor,
		hover:   config.ButtonHover,
		fgColor: config.TextLightColor,
		font:    face,
	}
}

// Hovered reports whether the cursor is over the button.
func (b *MenuButton) Hovered() bool {
	return image.Pt(ebiten.CursorPosition()).In(b.Rect)
}

// Clicked reports a left click on the button this frame.
func (b *MenuButton) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Hovered()
}

func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := b.bgColor
	if b.Hovered() {
		bg = b.hover
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)

	bounds := text.BoundString(b.font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.font, tx, ty, b.fgColor)
}
