// internal/interfaces/game_context.go
package interfaces

import (
	"tank-battle/internal/component"
	"tank-battle/internal/types"
)

// GameContext is the run-state side of the simulation, implemented by the
// orchestrator. Systems report outcomes through it instead of touching score,
// lives or the terminal flag themselves.
type GameContext interface {
	// LoseLife takes one life from the player and reports whether any remain.
	// When none remain the run ends with ReasonPlayerDead.
	LoseLife(now int64) bool
	OnEnemyDestroyed(enemy types.EntityID)
	OnPowerUpCollected(tank, powerUp types.EntityID, now int64)
	EndRun(reason component.TerminalReason)
	IsTerminal() bool
}
