// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"tank-battle/internal/assets"
	"tank-battle/internal/config"
	"tank-battle/internal/metrics"
)

// State is one screen of the desktop frontend.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// Context is what every state shares.
type Context struct {
	Resources *assets.ResourceManager
	Log       zerolog.Logger
	Settings  config.Settings
	Recorder  *metrics.Recorder // may be nil
}

// StateMachine switches between states, calling Exit on the old one and
// Enter on the new one.
type StateMachine struct {
	current State
	Ctx     *Context
}

func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update() error {
	if sm.current != nil {
		return sm.current.Update()
	}
	return nil
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
