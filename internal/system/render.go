// internal/system/render.go
package system

import (
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/interfaces"
)

// RenderSystem draws the arena through the surface/resource façade.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw clears the arena, then renders terrain, power-ups, tanks and bullets,
// with grass last so it hides whatever drives under it.
func (s *RenderSystem) Draw(surface interfaces.Surface, res interfaces.Resources, now int64) {
	surface.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
	for _, id := range entity.SortedIDs(s.ecs.Terrain) {
		t := s.ecs.Terrain[id]
		if t.Type != defs.TerrainGrass {
			surface.DrawSprite(res.Image("terrain", string(t.Type)), t.Rect.X, t.Rect.Y)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.PowerUps) {
		p := s.ecs.PowerUps[id]
		surface.DrawSprite(res.Image("powerup", string(p.Type)), p.Rect.X, p.Rect.Y)
	}
	for _, id := range entity.SortedIDs(s.ecs.Tanks) {
		t := s.ecs.Tanks[id]
		if !TankVisible(t, now) {
			continue
		}
		surface.DrawSprite(res.Image("tank", TankImageKey(t)), t.Rect.X, t.Rect.Y)
	}
	for _, id := range entity.SortedIDs(s.ecs.Bullets) {
		b := s.ecs.Bullets[id]
		surface.DrawSprite(res.Image("bullet", b.Faction.String()+"_"+b.Direction.String()), b.Rect.X, b.Rect.Y)
	}
	for _, id := range entity.SortedIDs(s.ecs.Terrain) {
		t := s.ecs.Terrain[id]
		if t.Type == defs.TerrainGrass {
			surface.DrawSprite(res.Image("terrain", string(t.Type)), t.Rect.X, t.Rect.Y)
		}
	}
}

// TankImageKey is the resource key for a tank, "{class}_{direction}".
func TankImageKey(t *component.Tank) string {
	return string(t.Class()) + "_" + t.Facing.String()
}

// TankVisible implements the shield blink: while shielded a tank shows only
// on even 100 ms phases.
func TankVisible(t *component.Tank, now int64) bool {
	if !t.Effects.Shielded(now) {
		return true
	}
	return (now/config.ShieldBlinkPeriodMs)%2 == 0
}
