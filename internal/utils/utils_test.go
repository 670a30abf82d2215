package utils

import (
	"testing"

	"tank-battle/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := NewRect(0, 0, 40, 40)

	assert.True(t, a.Overlaps(NewRect(39, 39, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(40, 0, 40, 40)), "shared edge")
	assert.False(t, a.Overlaps(NewRect(0, 40, 40, 40)), "shared edge")
	assert.True(t, a.Overlaps(NewRect(10, 10, 5, 5)), "containment")
}

func TestRect_WithinAndOutside(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)

	assert.True(t, NewRect(760, 560, 40, 40).Within(bounds))
	assert.False(t, NewRect(761, 560, 40, 40).Within(bounds))
	assert.False(t, NewRect(-1, 0, 40, 40).Within(bounds))

	assert.True(t, NewRect(0, -9, 8, 8).Outside(bounds))
	assert.False(t, NewRect(0, -8, 8, 8).Outside(bounds))
	assert.True(t, NewRect(801, 10, 8, 8).Outside(bounds))
}

func TestCenteredAt(t *testing.T) {
	r := CenteredAt(100, 50, 20, 10)
	cx, cy := r.Center()

	assert.Equal(t, NewRect(90, 45, 20, 10), r)
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 50.0, cy)
}

func TestGridConversions(t *testing.T) {
	x, y := TileToPixel(3, 13)
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 520.0, y)

	col, row := PixelToTile(119.9, 520)
	assert.Equal(t, 2, col)
	assert.Equal(t, 13, row)

	col, row = PixelToTile(-0.5, 0)
	assert.Equal(t, -1, col)
	assert.Equal(t, 0, row)

	assert.Equal(t, NewRect(40, 80, 40, 40), TileRect(1, 2))
	assert.Equal(t, NewRect(0, 0, 800, 600), ArenaBounds())
}

func TestChooseWeighted_Distribution(t *testing.T) {
	rng := NewPRNGService(99)
	entries := []defs.ClassWeight{
		{Class: defs.ClassElite, Weight: 0},
		{Class: defs.ClassFast, Weight: 0.3},
		{Class: defs.ClassHeavy, Weight: 0},
		{Class: defs.ClassNormal, Weight: 0.7},
	}

	counts := map[defs.TankClass]int{}
	for i := 0; i < 10000; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}

	assert.Zero(t, counts[defs.ClassElite])
	assert.Zero(t, counts[defs.ClassHeavy])
	assert.InDelta(t, 7000, counts[defs.ClassNormal], 300)
	assert.InDelta(t, 3000, counts[defs.ClassFast], 300)
}

func TestChooseWeighted_Degenerate(t *testing.T) {
	rng := NewPRNGService(1)

	assert.Equal(t, defs.TankClass(""), rng.ChooseWeighted(nil))
	assert.Equal(t, defs.ClassHeavy, rng.ChooseWeighted([]defs.ClassWeight{
		{Class: defs.ClassHeavy, Weight: 0},
		{Class: defs.ClassNormal, Weight: 0},
	}))
}

func TestPRNGService_Reproducible(t *testing.T) {
	a, b := NewPRNGService(5), NewPRNGService(5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(5), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestPick(t *testing.T) {
	rng := NewPRNGService(3)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Pick(rng, items)] = true
	}
	assert.Len(t, seen, 3)
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 5: "V", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		assert.Equal(t, want, ToRoman(in), "ToRoman(%d)", in)
	}
}

func TestSnapToGrid(t *testing.T) {
	x, y := SnapToGrid(59, 61)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 80.0, y)

	assert.True(t, InGrid(0, 0))
	assert.True(t, InGrid(19, 14))
	assert.False(t, InGrid(20, 0))
	assert.False(t, InGrid(0, -1))
}
