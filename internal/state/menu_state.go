// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"tank-battle/internal/assets"
	"tank-battle/internal/config"
	"tank-battle/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	start *ui.MenuButton
	quit  *ui.MenuButton
}

func NewMenuState(sm *StateMachine) *MenuState {
	face := sm.Ctx.Resources.Font(assets.FontMedium)
	cx := config.WindowWidth / 2
	return &MenuState{
		sm:    sm,
		start: ui.NewMenuButton(cx, config.WindowHeight/2, 200, 50, "Start", face),
		quit:  ui.NewMenuButton(cx, config.WindowHeight/2+70, 200, 50, "Quit", face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if m.quit.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if m.start.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "TANK BATTLE"
	face := m.sm.Ctx.Resources.Font(assets.FontLarge)
	w := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (config.WindowWidth-w)/2, config.WindowHeight/3, config.PlayerTankColor)

	hint := "Arrows/WASD move, Space fires, P pauses"
	small := m.sm.Ctx.Resources.Font(assets.FontSmall)
	w = text.BoundString(small, hint).Dx()
	text.Draw(screen, hint, small, (config.WindowWidth-w)/2, config.WindowHeight/3+40, config.TextDimColor)

	m.start.Draw(screen)
	m.quit.Draw(screen)
}

func (m *MenuState) Exit() {}
