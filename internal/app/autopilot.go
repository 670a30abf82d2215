package app

import (
	"tank-battle/internal/component"
	"tank-battle/internal/utils"
)

const (
	autopilotMinHold   = 10
	autopilotMaxHold   = 60
	autopilotFireRatio = 0.1
)

// Autopilot produces pseudo-random player input: it holds a heading for a
// random number of ticks and fires now and then. Runs are reproducible per
// seed.
type Autopilot struct {
	rng  *utils.PRNGService
	dir  component.Direction
	hold int
}

func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: utils.NewPRNGService(seed)}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next() component.Input {
	if a.hold <= 0 {
		a.dir = utils.Pick(a.rng, component.Directions)
		a.hold = autopilotMinHold + a.rng.Intn(autopilotMaxHold-autopilotMinHold+1)
	}
	a.hold--
	return component.Input{Move: a.dir, Fire: a.rng.Chance(autopilotFireRatio)}
}
