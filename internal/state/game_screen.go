// internal/state/game_screen.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-balloon-td/internal/app"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
	"go-balloon-td/internal/ui"
	"go-balloon-td/pkg/path"
	"go-balloon-td/pkg/render"
)

// GameScreen runs the simulation and the in-game UI. All simulation reads
// go through the snapshot Tick returns.
type GameScreen struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	hud      *ui.HUD
	shop     *ui.Shop

	snap app.Snapshot

	// placing is the tower type being dragged onto the map, "" when not
	// placing. selected is the clicked tower, 0 when none.
	placing  defs.TowerID
	selected types.EntityID
}

func NewGameScreen(sm *StateMachine, track *path.Path) *GameScreen {
	game := app.NewGame(track)
	hud := ui.NewHUD()
	game.EventDispatcher.Subscribe(event.BalloonLeaked, hud)

	return &GameScreen{
		sm:       sm,
		game:     game,
		renderer: render.NewRenderer(track),
		hud:      hud,
		shop:     ui.NewShop(),
	}
}

func (g *GameScreen) Enter() {}

func (g *GameScreen) Update(deltaTime float64) {
	g.handleInput()
	g.snap = g.game.Tick(deltaTime)
	g.hud.Update(deltaTime)

	if g.snap.GameOver {
		g.sm.SetState(NewEndState(g.sm, g.game.Track, g.snap))
	}
}

func (g *GameScreen) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartRound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.placing = ""
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if g.hud.PlayButton.Contains(x, y) {
		g.game.StartRound()
		return
	}
	if id, ok := g.shop.TowerAt(x, y); ok {
		g.placing = id
		g.selected = 0
		return
	}
	if g.selected != 0 {
		if g.shop.UpgradeButton.Contains(x, y) {
			// Failure just leaves the tower as it was; the shop label
			// already shows cost and max level.
			_ = g.game.UpgradeTower(g.selected)
			return
		}
		if g.shop.SellButton.Contains(x, y) {
			g.game.SellTower(g.selected)
			g.selected = 0
			return
		}
	}

	if g.placing != "" {
		if _, err := g.game.PlaceTower(g.placing, x, y); err == nil {
			g.placing = ""
		}
		return
	}

	g.selected = g.towerAt(x, y)
}

// towerAt picks the clicked tower from the last snapshot.
func (g *GameScreen) towerAt(x, y float64) types.EntityID {
	for _, t := range g.snap.Towers {
		dx, dy := t.X-x, t.Y-y
		if dx*dx+dy*dy <= 15*15 {
			return t.ID
		}
	}
	return 0
}

func (g *GameScreen) selectedView() (app.TowerView, bool) {
	for _, t := range g.snap.Towers {
		if t.ID == g.selected {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func (g *GameScreen) Draw(screen *ebiten.Image) {
	selected, hasSelection := g.selectedView()
	g.renderer.Draw(screen, g.snap, selected, hasSelection)

	if g.placing != "" {
		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		g.renderer.DrawPlacementGhost(screen, g.placing, x, y, g.game.CanPlaceAt(x, y))
	}

	g.hud.Draw(screen, g.snap)
	var selPtr *app.TowerView
	if hasSelection {
		selPtr = &selected
	}
	g.shop.Draw(screen, g.snap, selPtr)
}

func (g *GameScreen) Exit() {}
