// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tank-battle/internal/assets"
	"tank-battle/internal/audio"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/logging"
	"tank-battle/internal/metrics"
	"tank-battle/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()

	cfgErr := config.Load(*configDir)
	settings := config.Current()
	log := logging.New(settings.LogLevel, os.Stderr)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("running on defaults")
	}
	if err := defs.LoadLevelOverrides(); err != nil {
		log.Fatal().Err(err).Msg("bad level overrides")
	}

	sounds := audio.NewSoundManager()
	if settings.AudioEnabled {
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		}
		defer sounds.Cleanup()
	}

	resources, err := assets.NewResourceManager(sounds)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load resources")
	}
	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}

	sm := state.NewStateMachine(&state.Context{
		Resources: resources,
		Log:       log,
		Settings:  settings,
		Recorder:  recorder,
	})
	if settings.StartFromMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		sm.SetState(state.NewGameState(sm))
	}

	log.Info().
		Int64("seed", settings.Seed).
		Bool("audio", settings.AudioEnabled).
		Float64("scale", settings.WindowScale).
		Msg("starting")

	ebiten.SetTPS(config.TicksPerSec)
	ebiten.SetWindowSize(int(config.WindowWidth*settings.WindowScale), int(config.WindowHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Tank Battle")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
