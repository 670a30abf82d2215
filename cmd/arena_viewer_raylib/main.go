package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tank-battle/internal/app"
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/entity"
	"tank-battle/internal/logging"
)

// World units per arena pixel.
const worldScale = 0.1

type modelPart struct {
	size rl.Vector3
	tint rl.Color
}

var (
	tile   = float32(config.TileSize * worldScale)
	tankW  = float32(config.TankSize * worldScale * 0.9)
	bullet = float32(config.BulletSize * worldScale)
	pickup = float32(config.PowerUpSize * worldScale)
)

var modelParts = map[string]modelPart{
	"terrain_brick":  {rl.NewVector3(tile, tile, tile), colorToRL(config.BrickColor)},
	"terrain_steel":  {rl.NewVector3(tile, tile, tile), colorToRL(config.SteelColor)},
	"terrain_water":  {rl.NewVector3(tile, tile*0.1, tile), colorToRL(config.WaterColor)},
	"terrain_grass":  {rl.NewVector3(tile, tile*0.3, tile), colorToRL(config.GrassColor)},
	"terrain_base":   {rl.NewVector3(tile, tile*1.5, tile), colorToRL(config.BaseColor)},
	"tank_player":    {rl.NewVector3(tankW, tankW/2, tankW), colorToRL(config.PlayerTankColor)},
	"tank_normal":    {rl.NewVector3(tankW, tankW/2, tankW), colorToRL(config.EnemyTankColors["normal"])},
	"tank_fast":      {rl.NewVector3(tankW, tankW/2, tankW), colorToRL(config.EnemyTankColors["fast"])},
	"tank_heavy":     {rl.NewVector3(tankW, tankW/2, tankW), colorToRL(config.EnemyTankColors["heavy"])},
	"tank_elite":     {rl.NewVector3(tankW, tankW/2, tankW), colorToRL(config.EnemyTankColors["elite"])},
	"bullet_player":  {rl.NewVector3(bullet, bullet, bullet), colorToRL(config.PlayerBulletColor)},
	"bullet_enemy":   {rl.NewVector3(bullet, bullet, bullet), colorToRL(config.EnemyBulletColor)},
	"powerup_pickup": {rl.NewVector3(pickup, pickup, pickup), rl.White},
}

// toWorld maps an arena rectangle's centre onto the ground plane, arena
// centre at the origin.
func toWorld(x, y, w, h float64, lift float32) rl.Vector3 {
	cx := (x + w/2 - config.ScreenWidth/2) * worldScale
	cz := (y + h/2 - config.ScreenHeight/2) * worldScale
	return rl.NewVector3(float32(cx), lift, float32(cz))
}

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	settings := config.Current()
	if *seed == 0 {
		*seed = settings.Seed
	}
	log := logging.New(settings.LogLevel, os.Stderr)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("running on defaults")
	}
	if err := defs.LoadLevelOverrides(); err != nil {
		log.Fatal().Err(err).Msg("bad level overrides")
	}

	const screenWidth = 1280
	const screenHeight = 720
	rl.InitWindow(screenWidth, screenHeight, "Tank Battle Arena Viewer | Q/E rotate, wheel tilt, arrows drive, P pause")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSec)

	models := NewModelManager(log)
	models.LoadArenaModels()
	defer models.Cleanup()

	camera := rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Projection: rl.CameraPerspective,
	}
	isoPos := rl.NewVector3(0, 60, 60)
	topDownPos := rl.NewVector3(0, 90, 0.1)
	angleT := float32(0.3)

	game := app.NewGame(app.WithSeed(*seed), app.WithLogger(log), app.WithTransition(settings.LevelTransitionMs))
	pilot := app.NewAutopilot(game.Seed())
	var clock app.Clock
	game.StartRun(clock.Now())

	pause := NewPauseButton(screenWidth-40, 30, 12, rl.SkyBlue, rl.Lime)
	speed := NewSpeedButton(screenWidth-100, 30, 12)
	lives := NewLivesIndicator(10, 40)
	phase := NewPhaseIndicator(20, 80, 8)

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			angleT = rl.Clamp(angleT+wheel*0.05, 0, 0.99)
		}
		camera.Position = rl.Vector3Lerp(isoPos, topDownPos, angleT)
		camera.Target = rl.NewVector3(0, 0, 0)
		camera.Fovy = 55 + (35-55)*angleT

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			mouse := rl.GetMousePosition()
			switch {
			case pause.IsClicked(mouse):
				pause.Toggle()
			case speed.IsClicked(mouse):
				speed.Cycle()
			}
		}
		if rl.IsKeyPressed(rl.KeyP) {
			pause.Toggle()
		}

		switch {
		case game.IsTerminal():
			if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
				game.StartRun(clock.Now())
			}
		case !pause.Paused:
			for i := 0; i < speed.TicksPerFrame() && !game.IsTerminal(); i++ {
				game.SetInput(viewerInput(pilot))
				game.Tick(clock.Step())
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(10, 10, 20, 255))
		rl.BeginMode3D(camera)
		drawArena(game, models)
		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("Level %d  Score %d  Enemies %d  Quota %d",
			game.Level(), game.Score(), game.EnemiesOnScreen(), game.Quota()), 10, 10, 20, rl.RayWhite)
		lives.Draw(game.Lives(), config.PlayerLives)
		phase.Draw(game.Phase())
		pause.Draw()
		speed.Draw()
		if game.IsTerminal() {
			rl.DrawText(fmt.Sprintf("GAME OVER: %s. R to restart", game.Reason()), 10, 110, 24, rl.Red)
		}
		rl.EndDrawing()
	}

	log.Info().Msg(game.Summary())
}

// viewerInput lets the keyboard take over from the autopilot while any
// driving key is held.
func viewerInput(pilot *app.Autopilot) component.Input {
	auto := pilot.Next()
	in := component.Input{Fire: rl.IsKeyDown(rl.KeySpace)}
	switch {
	case rl.IsKeyDown(rl.KeyUp):
		in.Move = component.DirUp
	case rl.IsKeyDown(rl.KeyDown):
		in.Move = component.DirDown
	case rl.IsKeyDown(rl.KeyLeft):
		in.Move = component.DirLeft
	case rl.IsKeyDown(rl.KeyRight):
		in.Move = component.DirRight
	}
	if in.Move == component.DirNone && !in.Fire {
		return auto
	}
	return in
}

func drawArena(game *app.Game, models *ModelManager) {
	ecs := game.ECS
	rl.DrawPlane(rl.NewVector3(0, 0, 0),
		rl.NewVector2(config.ScreenWidth*worldScale, config.ScreenHeight*worldScale), rl.NewColor(25, 25, 30, 255))

	draw := func(id string, pos rl.Vector3, tint rl.Color) {
		if model, ok := models.Model(id); ok {
			rl.DrawModel(model, pos, 1, tint)
		}
	}

	for _, id := range entity.SortedIDs(ecs.Terrain) {
		t := ecs.Terrain[id]
		p := modelParts["terrain_"+string(t.Type)]
		draw("terrain_"+string(t.Type), toWorld(t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H, p.size.Y/2), rl.White)
	}
	for _, id := range entity.SortedIDs(ecs.PowerUps) {
		pu := ecs.PowerUps[id]
		draw("powerup_pickup", toWorld(pu.Rect.X, pu.Rect.Y, pu.Rect.W, pu.Rect.H, pickup/2),
			colorToRL(config.PowerUpColors[string(pu.Type)]))
	}
	now := game.Now()
	for _, id := range entity.SortedIDs(ecs.Tanks) {
		t := ecs.Tanks[id]
		if !t.Alive {
			continue
		}
		tint := rl.White
		if t.Effects.Shielded(now) {
			tint = rl.SkyBlue
		}
		// Tougher classes ride higher.
		lift := tankW / 4 * float32(t.Profile.Health)
		pos := toWorld(t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H, lift)
		draw("tank_"+string(t.Class()), pos, tint)
		dx, dy := t.Facing.Step(float64(tankW) * 0.6)
		rl.DrawCylinderEx(pos, rl.NewVector3(pos.X+float32(dx), pos.Y, pos.Z+float32(dy)), 0.3, 0.3, 6, rl.DarkGray)
	}
	for _, id := range entity.SortedIDs(ecs.Bullets) {
		b := ecs.Bullets[id]
		draw("bullet_"+b.Faction.String(), toWorld(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, tankW/2), rl.White)
	}
}
