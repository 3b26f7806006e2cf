// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-balloon-td/internal/config"
)

// Button is a rectangular clickable label.
type Button struct {
	X, Y, W, H float64
	Label      string
	// Fill overrides the default button color when non-nil.
	Fill color.Color
}

func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill := color.Color(config.ButtonColor)
	if b.Fill != nil {
		fill = b.Fill
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.Black, false)

	face := basicfont.Face7x13
	tw := len(b.Label) * 7
	tx := int(b.X) + (int(b.W)-tw)/2
	ty := int(b.Y) + int(b.H)/2 + 4
	text.Draw(screen, b.Label, face, tx, ty, color.Black)
}
