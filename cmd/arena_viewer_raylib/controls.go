package main

import (
	"image/color"
	"math"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tank-battle/internal/component"
)

// pulse is the click "pop": 30% bigger right after a click, settling back
// within a fraction of a second.
func pulse(since time.Time) float32 {
	return float32(1.0 + 0.3*math.Exp(-time.Since(since).Seconds()*8))
}

func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// PauseButton toggles the simulation clock.
type PauseButton struct {
	X, Y       float32
	Size       float32
	Paused     bool
	lastClick  time.Time
	pauseColor rl.Color
	playColor  rl.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		pauseColor: colorToRL(pauseColor),
		playColor:  colorToRL(playColor),
	}
}

func (b *PauseButton) Draw() {
	s := b.Size * pulse(b.lastClick)
	if b.Paused {
		p1 := rl.NewVector2(b.X-s, b.Y-s*1.2)
		p2 := rl.NewVector2(b.X-s, b.Y+s*1.2)
		p3 := rl.NewVector2(b.X+s, b.Y)
		rl.DrawTriangle(p1, p2, p3, b.playColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}
	w, h, gap := s*0.6, s*2.0, s*0.4
	for _, x := range []float32{b.X - w - gap/2, b.X + gap/2} {
		rl.DrawRectangleV(rl.NewVector2(x, b.Y-h/2), rl.NewVector2(w, h), b.pauseColor)
		rl.DrawRectangleLines(int32(x), int32(b.Y-h/2), int32(w), int32(h), rl.White)
	}
}

func (b *PauseButton) IsClicked(mouse rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mouse, rl.NewVector2(b.X, b.Y), b.Size)
}

func (b *PauseButton) Toggle() {
	b.Paused = !b.Paused
	b.lastClick = time.Now()
}

// SpeedButton cycles how many simulation ticks run per rendered frame.
type SpeedButton struct {
	X, Y      float32
	Size      float32
	lastClick time.Time
	steps     []int
	colors    []rl.Color
	state     int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:      x,
		Y:      y,
		Size:   size,
		steps:  []int{1, 2, 4},
		colors: []rl.Color{rl.Green, rl.Yellow, rl.Orange},
	}
}

// TicksPerFrame is the current fast-forward factor.
func (b *SpeedButton) TicksPerFrame() int {
	return b.steps[b.state]
}

func (b *SpeedButton) Draw() {
	s := b.Size * pulse(b.lastClick)
	clr := b.colors[b.state]
	h, w := s*1.2, s
	for _, dx := range []float32{0, w * 0.8} {
		p1 := rl.NewVector2(b.X-w+dx, b.Y-h/2)
		p2 := rl.NewVector2(b.X+dx, b.Y)
		p3 := rl.NewVector2(b.X-w+dx, b.Y+h/2)
		rl.DrawTriangle(p1, p2, p3, clr)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
	rl.DrawText("x"+strconv.Itoa(b.TicksPerFrame()), int32(b.X+s*1.2), int32(b.Y-8), 16, rl.White)
}

func (b *SpeedButton) IsClicked(mouse rl.Vector2) bool {
	// the double arrow is an awkward shape; a circle is close enough
	return rl.CheckCollisionPointCircle(mouse, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *SpeedButton) Cycle() {
	b.state = (b.state + 1) % len(b.steps)
	b.lastClick = time.Now()
}

// LivesIndicator draws one circle per life, spare lives filled.
type LivesIndicator struct {
	Position rl.Vector2
	Radius   float32
	Spacing  float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{Position: rl.NewVector2(x, y), Radius: 8, Spacing: 4}
}

func (i *LivesIndicator) Draw(lives, maxLives int) {
	step := i.Radius*2 + i.Spacing
	for j := 0; j < maxLives; j++ {
		cx := int32(i.Position.X + float32(j)*step + i.Radius)
		cy := int32(i.Position.Y + i.Radius)
		fill := rl.Black
		if j < lives {
			fill = rl.Red
			if lives == 1 {
				fill = rl.Orange
			}
		}
		rl.DrawCircle(cx, cy, i.Radius, fill)
		rl.DrawCircleLines(cx, cy, i.Radius, rl.White)
	}
	text := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	rl.DrawText(text, int32(i.Position.X+float32(maxLives)*step+6), int32(i.Position.Y), 16, rl.White)
}

// PhaseIndicator is a status light for the orchestrator phase.
type PhaseIndicator struct {
	X, Y      float32
	Radius    float32
	lastPhase component.Phase
	changed   time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

var phaseColors = map[component.Phase]rl.Color{
	component.PhaseMenu:            rl.Gray,
	component.PhasePlaying:         rl.Green,
	component.PhaseLevelTransition: rl.Yellow,
	component.PhaseGameOver:        rl.Red,
}

func (i *PhaseIndicator) Draw(phase component.Phase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.changed = time.Now()
	}
	r := i.Radius * pulse(i.changed)
	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), r, phaseColors[phase])
	rl.DrawCircleLines(int32(i.X), int32(i.Y), r, rl.White)
	rl.DrawText(phase.String(), int32(i.X+i.Radius*2), int32(i.Y-8), 16, rl.White)
}
