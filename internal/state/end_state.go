// internal/state/end_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-balloon-td/internal/app"
	"go-balloon-td/internal/config"
	"go-balloon-td/pkg/path"
)

// EndState is the win/lose screen.
type EndState struct {
	sm    *StateMachine
	track *path.Path
	snap  app.Snapshot
}

func NewEndState(sm *StateMachine, track *path.Path, snap app.Snapshot) *EndState {
	return &EndState{sm: sm, track: track, snap: snap}
}

func (e *EndState) Enter() {}

func (e *EndState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.sm.SetState(NewGameScreen(e.sm, e.track))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.sm.SetState(NewMenuState(e.sm, e.track))
	}
}

func (e *EndState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	headline := "Game Over!"
	if e.snap.Won {
		headline = "You Win!"
	}
	text.Draw(screen, headline, face, 360, 200, config.TextColor)

	rounds := e.snap.Round - 1
	if e.snap.Won {
		rounds = e.snap.Round
	}
	text.Draw(screen, fmt.Sprintf("You made it %d rounds!", rounds), face, 330, 250, config.TextColor)
	text.Draw(screen, "Press R to restart or M for the menu", face, 280, 300, config.TextColor)
}

func (e *EndState) Exit() {}
