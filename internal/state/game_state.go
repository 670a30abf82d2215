// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"tank-battle/internal/app"
	"tank-battle/internal/assets"
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/ui"
)

// GameState runs the simulation, one tick per ebiten update.
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	clock   app.Clock
	hud     *ui.HUD
	fire    component.FireLatch
	started bool
}

func NewGameState(sm *StateMachine) *GameState {
	ctx := sm.Ctx
	g := app.NewGame(
		app.WithSeed(ctx.Settings.Seed),
		app.WithLogger(ctx.Log),
		app.WithTransition(ctx.Settings.LevelTransitionMs),
	)
	app.NewSoundListener(ctx.Resources).Attach(g.EventDispatcher)
	if ctx.Recorder != nil {
		ctx.Recorder.Attach(g.EventDispatcher)
	}
	return &GameState{
		sm:   sm,
		game: g,
		hud:  ui.NewHUD(ctx.Resources.Font(assets.FontSmall), ctx.Resources.Font(assets.FontLarge)),
	}
}

// Enter starts the run the first time; coming back from pause resumes it.
// Either way a fire key held across the switch does not shoot.
func (g *GameState) Enter() {
	g.fire.Disarm()
	if !g.started {
		g.game.StartRun(g.clock.Now())
		g.started = true
	}
}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.ReturnToMenu()
		g.sm.SetState(NewMenuState(g.sm))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	in := readInput()
	in.Fire = g.fire.Filter(in.Fire)
	g.game.SetInput(in)
	g.game.Tick(g.clock.Step())

	if g.game.IsTerminal() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
	return nil
}

// readInput maps held keys to the control vector. When several directions
// are held the first of up, down, left, right wins.
func readInput() component.Input {
	in := component.Input{Fire: ebiten.IsKeyPressed(ebiten.KeySpace)}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		in.Move = component.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		in.Move = component.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		in.Move = component.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		in.Move = component.DirRight
	}
	return in
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(ui.Surface{Screen: screen}, g.sm.Ctx.Resources)
	g.hud.Draw(screen, g.game)

	if g.game.Phase() == component.PhaseLevelTransition {
		msg := fmt.Sprintf("Level %d", g.game.Level())
		face := g.sm.Ctx.Resources.Font(assets.FontLarge)
		w := text.BoundString(face, msg).Dx()
		text.Draw(screen, msg, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}

// Game exposes the running simulation.
func (g *GameState) Game() *app.Game {
	return g.game
}
