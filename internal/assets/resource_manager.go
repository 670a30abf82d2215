// internal/assets/resource_manager.go
package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/interfaces"
	"tank-battle/pkg/render"
)

// Font sizes used by the UI.
const (
	FontSmall  = 16
	FontMedium = 24
	FontLarge  = 32
)

const placeholderSize = 32

// SoundPlayer is what the manager forwards PlaySound to.
type SoundPlayer interface {
	Play(name string)
}

// ResourceManager generates the game's images, loads fonts and forwards
// sounds. Images are keyed "{category}_{name}".
type ResourceManager struct {
	images      map[string]*ebiten.Image
	fonts       map[int]font.Face
	sounds      SoundPlayer
	placeholder *ebiten.Image
}

var _ interfaces.Resources = (*ResourceManager)(nil)

// NewResourceManager builds every image and the three standard font
// sizes. sounds may be nil.
func NewResourceManager(sounds SoundPlayer) (*ResourceManager, error) {
	m := &ResourceManager{
		images: make(map[string]*ebiten.Image),
		fonts:  make(map[int]font.Face),
		sounds: sounds,
	}

	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	for _, size := range []int{FontSmall, FontMedium, FontLarge} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create font face %d: %w", size, err)
		}
		m.fonts[size] = face
	}

	m.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
	m.placeholder.Fill(config.PlaceholderFill)

	m.createTankImages()
	m.createBulletImages()
	m.createTerrainImages()
	m.createPowerUpImages()
	return m, nil
}

// Image returns the image for category/name, or a magenta placeholder.
func (m *ResourceManager) Image(category, name string) interfaces.Drawable {
	if img, ok := m.images[category+"_"+name]; ok {
		return img
	}
	return m.placeholder
}

// Font returns the face closest in size, falling back to small.
func (m *ResourceManager) Font(size int) font.Face {
	if f, ok := m.fonts[size]; ok {
		return f
	}
	return m.fonts[FontSmall]
}

func (m *ResourceManager) PlaySound(name string) {
	if m.sounds != nil {
		m.sounds.Play(name)
	}
}

func (m *ResourceManager) createTankImages() {
	classes := append([]defs.TankClass{defs.ClassPlayer}, defs.EnemyClasses...)
	for _, class := range classes {
		body := config.PlayerTankColor
		if class != defs.ClassPlayer {
			body = config.EnemyTankColors[string(class)]
		}
		for _, dir := range component.Directions {
			m.images["tank_"+string(class)+"_"+dir.String()] = tankImage(body, dir)
		}
	}
}

// tankImage draws a hull, tracks along the sides of travel and a barrel
// pointing in dir.
func tankImage(body color.RGBA, dir component.Direction) *ebiten.Image {
	const s = float32(config.TankSize)
	img := ebiten.NewImage(config.TankSize, config.TankSize)
	track := render.DarkenColor(body, 0.5)
	barrel := render.DarkenColor(body, 0.7)

	vertical := dir == component.DirUp || dir == component.DirDown
	if vertical {
		vector.DrawFilledRect(img, 0, 0, s/5, s, track, false)
		vector.DrawFilledRect(img, s*4/5, 0, s/5, s, track, false)
	} else {
		vector.DrawFilledRect(img, 0, 0, s, s/5, track, false)
		vector.DrawFilledRect(img, 0, s*4/5, s, s/5, track, false)
	}
	vector.DrawFilledRect(img, s/5, s/5, s*3/5, s*3/5, body, false)
	vector.DrawFilledCircle(img, s/2, s/2, s/6, barrel, true)

	const w = float32(6)
	switch dir {
	case component.DirUp:
		vector.DrawFilledRect(img, s/2-w/2, 0, w, s/2, barrel, false)
	case component.DirDown:
		vector.DrawFilledRect(img, s/2-w/2, s/2, w, s/2, barrel, false)
	case component.DirLeft:
		vector.DrawFilledRect(img, 0, s/2-w/2, s/2, w, barrel, false)
	case component.DirRight:
		vector.DrawFilledRect(img, s/2, s/2-w/2, s/2, w, barrel, false)
	}
	return img
}

func (m *ResourceManager) createBulletImages() {
	for _, faction := range []component.Faction{component.FactionPlayer, component.FactionEnemy} {
		clr := config.EnemyBulletColor
		if faction == component.FactionPlayer {
			clr = config.PlayerBulletColor
		}
		for _, dir := range component.Directions {
			img := ebiten.NewImage(config.BulletSize, config.BulletSize)
			r := float32(config.BulletSize) / 2
			vector.DrawFilledCircle(img, r, r, r, clr, true)
			m.images["bullet_"+faction.String()+"_"+dir.String()] = img
		}
	}
}

func (m *ResourceManager) createTerrainImages() {
	const s = float32(config.TileSize)
	fills := map[defs.TerrainType]color.RGBA{
		defs.TerrainBrick: config.BrickColor,
		defs.TerrainSteel: config.SteelColor,
		defs.TerrainWater: config.WaterColor,
		defs.TerrainGrass: config.GrassColor,
		defs.TerrainBase:  config.BaseColor,
	}
	for t, fill := range fills {
		img := ebiten.NewImage(config.TileSize, config.TileSize)
		img.Fill(fill)
		edge := render.DarkenColor(fill, 0.6)
		switch t {
		case defs.TerrainBrick:
			// mortar lines
			for y := float32(0); y < s; y += s / 4 {
				vector.StrokeLine(img, 0, y, s, y, 2, edge, false)
			}
			for y, row := float32(0), 0; y < s; y, row = y+s/4, row+1 {
				off := float32(row%2) * s / 4
				for x := off; x < s; x += s / 2 {
					vector.StrokeLine(img, x, y, x, y+s/4, 2, edge, false)
				}
			}
		case defs.TerrainSteel:
			vector.StrokeRect(img, 2, 2, s-4, s-4, 3, edge, false)
			vector.DrawFilledRect(img, s/4, s/4, s/2, s/2, render.DarkenColor(fill, 0.85), false)
		case defs.TerrainBase:
			vector.DrawFilledCircle(img, s/2, s/2, s/3, edge, true)
		default:
			vector.StrokeRect(img, 0, 0, s, s, 1, edge, false)
		}
		m.images["terrain_"+string(t)] = img
	}
}

func (m *ResourceManager) createPowerUpImages() {
	const s = float32(config.PowerUpSize)
	for _, t := range defs.PowerUpTypes {
		fill := config.PowerUpColors[string(t)]
		img := ebiten.NewImage(config.PowerUpSize, config.PowerUpSize)
		vector.DrawFilledRect(img, 0, 0, s, s, fill, true)
		vector.StrokeRect(img, 1, 1, s-2, s-2, 2, color.White, true)
		m.images["powerup_"+string(t)] = img
	}
}
