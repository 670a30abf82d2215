// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	HUDWidth     = 150
	WindowWidth  = ScreenWidth + HUDWidth
	WindowHeight = ScreenHeight
	TicksPerSec  = 60

	TileSize     = 40
	TankSize     = 40
	BulletSize   = 8
	PowerUpSize  = 20
	GridWidth    = ScreenWidth / TileSize
	GridHeight   = ScreenHeight / TileSize
	PlayerLives  = 3
	PlayerSpawnX = 3              // tiles
	PlayerSpawnY = GridHeight - 2 // tiles

	MaxEnemiesOnScreen  = 4
	EnemySpawnDelayMs   = 3000
	InitialEnemyBatch   = 3
	SpawnPlacementTries = 10
	EnemyTurnChance     = 0.01
	EnemyFireChance     = 0.05
	LevelTransitionMs   = 1500
	PowerUpDropChance   = 0.3
	PowerUpLifetimeMs   = 10000
	PowerUpSpawnDelayMs = 20000
	PowerUpSpawnChance  = 0.1
	PowerUpPlacementTry = 10
	RespawnShieldMs     = 3000
	ShieldBlinkPeriodMs = 100

	SpeedBoostMultiplier = 1.5
	RapidFireMultiplier  = 2.0

	PointsForLevelUp  = 500
	PointsPerPowerUp  = 50
	PointsPerEnemyDef = 100

	// Health value for terrain that bullets never wear down.
	IndestructibleHealth = 999999
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	HUDColor        = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextDimColor    = color.RGBA{128, 128, 128, 255}
	ActiveColor     = color.RGBA{0, 255, 0, 255}
	PlaceholderFill = color.RGBA{255, 0, 255, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	OverlayColor    = color.RGBA{0, 0, 0, 128}

	BrickColor = color.RGBA{210, 105, 30, 255}
	SteelColor = color.RGBA{169, 169, 169, 255}
	WaterColor = color.RGBA{0, 191, 255, 255}
	GrassColor = color.RGBA{34, 139, 34, 255}
	BaseColor  = color.RGBA{255, 215, 0, 255}

	PlayerTankColor = color.RGBA{255, 215, 0, 255}
	EnemyTankColors = map[string]color.RGBA{
		"normal": {200, 200, 200, 255},
		"fast":   {100, 200, 100, 255},
		"heavy":  {150, 100, 100, 255},
		"elite":  {220, 60, 60, 255},
	}
	PlayerBulletColor = color.RGBA{255, 255, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 255, 255, 255}

	PowerUpColors = map[string]color.RGBA{
		"shield":      {0, 191, 255, 255},
		"speed":       {0, 255, 0, 255},
		"rapid_fire":  {255, 255, 0, 255},
		"base_shield": {192, 192, 192, 255},
	}
)

// TickMillis converts a tick count into simulation milliseconds.
func TickMillis(ticks int64) int64 {
	return ticks * 1000 / TicksPerSec
}
