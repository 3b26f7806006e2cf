// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-balloon-td/internal/app"
	"go-balloon-td/internal/component"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/event"
)

// HUD draws money, lives, round and phase, plus the play/speed button.
// It listens for leaks so the lives counter can flash.
type HUD struct {
	PlayButton *Button
	flashTimer float64
}

func NewHUD() *HUD {
	return &HUD{
		PlayButton: NewButton(700, 10, 90, 40, "Play"),
	}
}

// OnEvent flashes the lives counter when a balloon escapes.
func (h *HUD) OnEvent(e event.Event) {
	if e.Type == event.BalloonLeaked {
		h.flashTimer = config.LivesFlashDuration
	}
}

func (h *HUD) Update(deltaTime float64) {
	if h.flashTimer > 0 {
		h.flashTimer -= deltaTime
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	face := basicfont.Face7x13

	text.Draw(screen, fmt.Sprintf("Money: $%d", snap.Money), face, 10, 20, config.MoneyColor)

	livesColor := color.Color(config.TextColor)
	if h.flashTimer > 0 {
		livesColor = config.LivesColor
	}
	text.Draw(screen, fmt.Sprintf("Lives: %d", snap.Lives), face, 10, 40, livesColor)

	text.Draw(screen, fmt.Sprintf("Round %d  (%s)", snap.Round, snap.Phase), face, 10, config.ScreenHeight-12, config.TextColor)

	if snap.Paused {
		text.Draw(screen, "PAUSED", face, config.ScreenWidth/2-21, 20, config.LivesColor)
	}

	h.PlayButton.Label = playButtonLabel(snap)
	h.PlayButton.Draw(screen)
}

func playButtonLabel(snap app.Snapshot) string {
	if snap.Phase == component.WaveIdle {
		return "Play"
	}
	return fmt.Sprintf("%dx", snap.SpeedMultiplier)
}
