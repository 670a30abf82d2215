// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-battle/internal/assets"
	"tank-battle/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game underneath; the simulation clock does not
// move while it is active.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	pauseText := "PAUSED"
	face := s.stateMachine.Ctx.Resources.Font(assets.FontLarge)
	w := text.BoundString(face, pauseText).Dx()
	text.Draw(screen, pauseText, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
