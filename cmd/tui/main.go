// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"tank-battle/internal/app"
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/defs"
	"tank-battle/internal/logging"
)

// Terminals report presses but not releases, so a direction key keeps the
// tank moving for this many ticks after the last press or repeat.
const holdTicks = 8

type terminalGame struct {
	screen  tcell.Screen
	game    *app.Game
	res     *glyphResources
	clock   app.Clock
	move    component.Direction
	held    int
	fire    bool
	paused  bool
	running bool
}

func main() {
	os.Exit(play())
}

// play runs the terminal session and returns the process exit code, so that
// deferred cleanup runs before exiting.
func play() int {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	logFile := flag.String("log", "", "write logs to this file (the terminal is busy)")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	settings := config.Current()
	if *seed == 0 {
		*seed = settings.Seed
	}

	out := os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	level := settings.LogLevel
	if *logFile == "" {
		level = "disabled"
	}
	log := logging.NewPlain(level, out)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("running on defaults")
	}
	if err := defs.LoadLevelOverrides(); err != nil {
		fmt.Fprintf(os.Stderr, "bad level overrides: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		return 1
	}
	screen.SetStyle(styleBase)

	res := newGlyphResources()
	game := app.NewGame(app.WithSeed(*seed), app.WithLogger(log), app.WithTransition(settings.LevelTransitionMs))
	app.NewSoundListener(res).Attach(game.EventDispatcher)

	tg := &terminalGame{screen: screen, game: game, res: res, running: true}
	tg.game.StartRun(tg.clock.Now())
	tg.run()
	screen.Fini()

	fmt.Println(game.Summary())
	return 0
}

func (t *terminalGame) run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen.PollEvent, events, done)

	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()

	for t.running {
		select {
		case ev := <-events:
			t.handle(ev)
		case <-ticker.C:
			t.step()
			t.render()
		}
	}
}

// pumpEvents forwards polled events until the screen is finalized or done
// is closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *terminalGame) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			t.running = false
		case tcell.KeyF9:
			t.paused = !t.paused
		case tcell.KeyUp:
			t.press(component.DirUp)
		case tcell.KeyDown:
			t.press(component.DirDown)
		case tcell.KeyLeft:
			t.press(component.DirLeft)
		case tcell.KeyRight:
			t.press(component.DirRight)
		case tcell.KeyEnter:
			if t.game.IsTerminal() {
				t.restart()
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				t.fire = true
			case 'w', 'W':
				t.press(component.DirUp)
			case 's', 'S':
				t.press(component.DirDown)
			case 'a', 'A':
				t.press(component.DirLeft)
			case 'd', 'D':
				t.press(component.DirRight)
			case 'p', 'P':
				t.paused = !t.paused
			case 'q', 'Q':
				t.running = false
			case 'r', 'R':
				if t.game.IsTerminal() {
					t.restart()
				}
			}
		}
	}
}

func (t *terminalGame) press(d component.Direction) {
	t.move = d
	t.held = holdTicks
}

func (t *terminalGame) restart() {
	t.game.StartRun(t.clock.Now())
}

func (t *terminalGame) step() {
	if t.paused || t.game.IsTerminal() {
		return
	}
	in := component.Input{Fire: t.fire}
	if t.held > 0 {
		in.Move = t.move
		t.held--
	}
	t.fire = false
	t.game.SetInput(in)
	t.game.Tick(t.clock.Step())
}

func (t *terminalGame) render() {
	t.screen.Clear()
	t.game.Draw(cellSurface{screen: t.screen}, t.res)

	arenaCols := config.ScreenWidth / cellW
	arenaRows := config.ScreenHeight / cellH
	for row := 0; row < arenaRows; row++ {
		t.screen.SetContent(arenaCols, row, '│', nil, styleBase.Foreground(tcell.ColorGray))
	}

	x := arenaCols + 2
	lines := []string{
		fmt.Sprintf("Lives  %d", t.game.Lives()),
		fmt.Sprintf("Score  %d", t.game.Score()),
		fmt.Sprintf("Level  %d", t.game.Level()),
		fmt.Sprintf("Enemy  %d", t.game.EnemiesOnScreen()),
		fmt.Sprintf("Quota  %d", t.game.Quota()),
	}
	for _, e := range t.game.ActiveEffects() {
		lines = append(lines, fmt.Sprintf("%s %ds", defs.PowerUpFor(e.Type).Symbol, e.Seconds()))
	}
	for i, l := range lines {
		drawText(t.screen, x, i, l, styleBase)
	}

	status := ""
	switch {
	case t.game.IsTerminal():
		status = fmt.Sprintf("GAME OVER (%s). R restart, Q quit", t.game.Reason())
	case t.paused:
		status = "PAUSED"
	case t.game.Phase() == component.PhaseLevelTransition:
		status = fmt.Sprintf("Level %d", t.game.Level())
	default:
		status = strings.Join(t.res.played, " ")
	}
	drawText(t.screen, 0, arenaRows, status, styleBase.Foreground(tcell.ColorYellow))
	t.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
