// cmd/headless/main.go
package main

import (
	"flag"
	"os"

	"github.com/atotto/clipboard"

	"tank-battle/internal/app"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/event"
	"tank-battle/internal/logging"
	"tank-battle/internal/metrics"
)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	ticks := flag.Int64("ticks", 60*60*5, "maximum ticks to simulate")
	copySummary := flag.Bool("copy", false, "copy the run summary to the clipboard")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	settings := config.Current()
	log := logging.New(settings.LogLevel, os.Stderr)
	if cfgErr != nil {
		log.Debug().Err(cfgErr).Msg("running on defaults")
	}
	if err := defs.LoadLevelOverrides(); err != nil {
		log.Fatal().Err(err).Msg("bad level overrides")
	}
	if *seed == 0 {
		*seed = settings.Seed
	}

	game := app.NewGame(
		app.WithSeed(*seed),
		app.WithLogger(log),
		app.WithTransition(settings.LevelTransitionMs),
	)
	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics recorder")
	}
	recorder.Attach(game.EventDispatcher)

	pilot := app.NewAutopilot(game.Seed())
	var clock app.Clock
	game.StartRun(clock.Now())
	for clock.Ticks() < *ticks && !game.IsTerminal() {
		game.SetInput(pilot.Next())
		game.Tick(clock.Step())
	}

	summary := game.Summary()
	log.Info().
		Int("level", game.Level()).
		Int("score", game.Score()).
		Int("lives", game.Lives()).
		Str("reason", string(game.Reason())).
		Int64("ticks", clock.Ticks()).
		Int64("shots", recorder.Total(event.BulletFired)).
		Int64("kills", recorder.Total(event.EnemyDestroyed)).
		Msg(summary)

	if *copySummary {
		if err := clipboard.WriteAll(summary); err != nil {
			log.Warn().Err(err).Msg("failed to copy summary")
		}
	}
}
