package component

import "tank-battle/internal/defs"

// Phase is the orchestrator's top-level state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelTransition
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// TerminalReason records why a run ended.
type TerminalReason string

const (
	ReasonNone          TerminalReason = "none"
	ReasonBaseDestroyed TerminalReason = "base_destroyed"
	ReasonPlayerDead    TerminalReason = "player_dead"
	ReasonVictory       TerminalReason = "victory"
)

// Wave is the spawn bookkeeping for the current level.
type Wave struct {
	Weights   []defs.ClassWeight
	Remaining int   // quota still to spawn
	LastSpawn int64 // time of the last successful spawn
}
