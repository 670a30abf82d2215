package state

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-battle/internal/assets"
	"tank-battle/internal/component"
	"tank-battle/internal/config"
	"tank-battle/internal/ui"
)

var reasonText = map[component.TerminalReason]string{
	component.ReasonBaseDestroyed: "Your base was destroyed",
	component.ReasonPlayerDead:    "You ran out of lives",
	component.ReasonVictory:       "Victory!",
}

// GameOverState shows the result over the frozen arena.
type GameOverState struct {
	sm      *StateMachine
	last    *GameState
	restart *ui.MenuButton
	menu    *ui.MenuButton
	copied  string
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	face := sm.Ctx.Resources.Font(assets.FontMedium)
	cx := config.ScreenWidth / 2
	y := config.ScreenHeight * 2 / 3
	return &GameOverState{
		sm:      sm,
		last:    last,
		restart: ui.NewMenuButton(cx, y, 200, 50, "Restart", face),
		menu:    ui.NewMenuButton(cx, y+70, 200, 50, "Menu", face),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	switch {
	case s.restart.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.sm.SetState(NewGameState(s.sm))
	case s.menu.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.last.Game().ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		summary := s.last.Game().Summary()
		if err := clipboard.WriteAll(summary); err != nil {
			s.sm.Ctx.Log.Warn().Err(err).Msg("failed to copy run summary")
			s.copied = "Clipboard unavailable"
		} else {
			s.copied = "Summary copied"
		}
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.last.Game()
	res := s.sm.Ctx.Resources
	center := func(msg string, size, y int) {
		face := res.Font(size)
		w := text.BoundString(face, msg).Dx()
		text.Draw(screen, msg, face, (config.ScreenWidth-w)/2, y, config.TextLightColor)
	}
	center(reasonText[g.Reason()], assets.FontLarge, config.ScreenHeight/3)
	center(fmt.Sprintf("Final score: %d", g.Score()), assets.FontMedium, config.ScreenHeight/3+50)
	center("Press C to copy a summary", assets.FontSmall, config.ScreenHeight/3+90)
	if s.copied != "" {
		center(s.copied, assets.FontSmall, config.ScreenHeight/3+115)
	}

	s.restart.Draw(screen)
	s.menu.Draw(screen)
}

func (s *GameOverState) Exit() {}
