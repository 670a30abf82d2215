package defs

// Names of the effects the game plays through the resource façade.
const (
	SoundShoot         = "shoot"
	SoundExplosion     = "explosion"
	SoundPlayerHit     = "player_hit"
	SoundBrickBreak    = "brick_break"
	SoundPowerUpPickup = "powerup_pickup"
	SoundPowerUpAppear = "powerup_appear"
	SoundLevelComplete = "level_complete"
	SoundGameOver      = "game_over"
)
