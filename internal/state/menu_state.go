// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-balloon-td/internal/config"
	"go-balloon-td/internal/ui"
	"go-balloon-td/pkg/path"
)

// MenuState is the title screen with play and instructions.
type MenuState struct {
	sm               *StateMachine
	track            *path.Path
	playButton       *ui.Button
	instructionsBtn  *ui.Button
	backButton       *ui.Button
	showInstructions bool
}

func NewMenuState(sm *StateMachine, track *path.Path) *MenuState {
	return &MenuState{
		sm:              sm,
		track:           track,
		playButton:      ui.NewButton(300, 200, 200, 50, "Play"),
		instructionsBtn: ui.NewButton(300, 270, 200, 50, "Instructions"),
		backButton:      ui.NewButton(300, 520, 200, 50, "Back"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if m.showInstructions {
		if m.backButton.Contains(x, y) {
			m.showInstructions = false
		}
		return
	}
	switch {
	case m.playButton.Contains(x, y):
		m.sm.SetState(NewGameScreen(m.sm, m.track))
	case m.instructionsBtn.Contains(x, y):
		m.showInstructions = true
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	if m.showInstructions {
		lines := []string{
			"INSTRUCTIONS",
			"- Click a tower in the shop, then click the map to place it",
			"- Press SPACE or the Play button to start each round",
			"- While a round runs the Play button toggles 2x speed",
			"- Click a tower to select it, then upgrade or sell",
			"- Press P to pause",
			"- Survive all 20 rounds!",
		}
		for i, line := range lines {
			text.Draw(screen, line, face, 50, 100+i*30, config.TextColor)
		}
		m.backButton.Draw(screen)
		return
	}

	text.Draw(screen, "Balloon TD", face, config.ScreenWidth/2-35, 110, color.White)
	m.playButton.Draw(screen)
	m.instructionsBtn.Draw(screen)
}

func (m *MenuState) Exit() {}
