package system

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"tank-battle/internal/component"
	"tank-battle/internal/defs"
	"tank-battle/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
)

type keyed string

func (keyed) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }

type keyResources struct{}

func (keyResources) Image(category, key string) interfaces.Drawable {
	return keyed(category + "_" + key)
}
func (keyResources) Font(int) font.Face { return nil }
func (keyResources) PlaySound(string)   {}

type recordingSurface struct{ drawn []string }

func (s *recordingSurface) DrawSprite(img interfaces.Drawable, x, y float64) {
	s.drawn = append(s.drawn, string(img.(keyed)))
}
func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.drawn = append(s.drawn, fmt.Sprintf("fill_%vx%v", w, h))
}

func TestRenderSystem_DrawOrder(t *testing.T) {
	h := newHarness()
	h.terrain(0, 5, defs.TerrainGrass)
	h.terrain(1, 5, defs.TerrainBrick)
	h.bullet(300, 300, component.DirLeft, component.FactionEnemy)
	h.tanks.CreateTank(0, 200, defs.ClassFast, component.FactionEnemy, component.DirDown)
	h.powerUps.Spawn(defs.PowerUpRapidFire, 100, 100, 0)

	s := &recordingSurface{}
	NewRenderSystem(h.ecs).Draw(s, keyResources{}, 0)

	assert.Equal(t, []string{
		"fill_800x600",
		"terrain_brick",
		"powerup_rapid_fire",
		"tank_fast_down",
		"bullet_enemy_left",
		"terrain_grass",
	}, s.drawn)
}

func TestTankVisible_ShieldBlink(t *testing.T) {
	tank := &component.Tank{Effects: component.StatusEffects{ShieldEnd: 1000}}

	assert.True(t, TankVisible(tank, 0))
	assert.False(t, TankVisible(tank, 150))
	assert.True(t, TankVisible(tank, 250))
	assert.False(t, TankVisible(tank, 999))
	assert.True(t, TankVisible(tank, 1100), "no blinking once the shield is gone")
}
