// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-balloon-td/internal/app"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/defs"
	"go-balloon-td/pkg/path"
)

// Renderer draws a simulation snapshot. It keeps a prerendered track
// image because the track never changes.
type Renderer struct {
	track      *path.Path
	trackImage *ebiten.Image
}

func NewRenderer(track *path.Path) *Renderer {
	r := &Renderer{track: track}
	r.renderTrackImage()
	return r
}

func (r *Renderer) renderTrackImage() {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	points := r.track.Points()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(img,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			20, config.TrackColor, true)
	}
	for _, p := range points {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), 10, config.TrackColor, true)
	}
	r.trackImage = img
}

// Draw renders the board: track, towers, balloons, projectiles. The
// selected tower, if any, gets its range circle drawn.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot, selected app.TowerView, hasSelection bool) {
	screen.DrawImage(r.trackImage, nil)

	if hasSelection {
		vector.DrawFilledCircle(screen,
			float32(selected.X), float32(selected.Y),
			float32(selected.Range), config.RangeColor, true)
	}

	for _, t := range snap.Towers {
		def := defs.TowerLibrary[t.DefID]
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), 14, def.Color, true)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), 14, 2, color.White, true)
	}

	for _, b := range snap.Balloons {
		def := defs.BalloonLibrary[b.DefID]
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), def.Radius, def.Color, true)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 4, config.ProjectileColor, true)
	}
}

// DrawPlacementGhost shows the tower being placed under the cursor, green
// when the spot is valid and red when it is not.
func (r *Renderer) DrawPlacementGhost(screen *ebiten.Image, towerID defs.TowerID, x, y float64, valid bool) {
	def, ok := defs.TowerLibrary[towerID]
	if !ok {
		return
	}
	c := config.ButtonOKColor
	if !valid {
		c = config.ButtonBadColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(def.Range), config.RangeColor, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 14, def.Color, true)
	vector.StrokeCircle(screen, float32(x), float32(y), 14, 3, c, true)
}
