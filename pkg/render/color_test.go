package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 77}
	assert.Equal(t, color.RGBA{100, 50, 25, 77}, DarkenColor(c, 0.5))
	assert.Equal(t, c, DarkenColor(c, 3), "factor is clamped to 1")
	assert.Equal(t, color.RGBA{0, 0, 0, 77}, DarkenColor(c, -1))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(9), WithAlpha(color.RGBA{1, 2, 3, 4}, 9).A)
}
