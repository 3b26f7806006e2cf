// internal/app/snapshot.go
package app

import (
	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/types"
)

// Snapshot is the observable state returned by Tick. It is the sole read
// path for the rendering layer; the renderer never touches the registries.
type Snapshot struct {
	Money           int
	Lives           int
	Round           int
	SpeedMultiplier int
	Paused          bool
	GameOver        bool
	Won             bool
	Phase           component.WavePhase

	Balloons    []BalloonView
	Towers      []TowerView
	Projectiles []ProjectileView
}

type BalloonView struct {
	ID       types.EntityID
	DefID    defs.BalloonID
	X, Y     float64
	Health   int
	Progress float64
}

type TowerView struct {
	ID              types.EntityID
	DefID           defs.TowerID
	X, Y            float64
	Level           int
	Range           float64
	Policy          defs.TargetPolicy
	NextUpgradeCost int
	Invested        int
}

type ProjectileView struct {
	ID   types.EntityID
	X, Y float64
}

// Snapshot copies the observable state out of the registries in id order.
func (g *Game) Snapshot() Snapshot {
	gs := g.ECS.GameState
	snap := Snapshot{
		Money:           gs.Money,
		Lives:           gs.Lives,
		Round:           gs.Round,
		SpeedMultiplier: gs.SpeedMultiplier,
		Paused:          gs.Paused,
		GameOver:        gs.GameOver,
		Won:             gs.Won,
		Phase:           g.ECS.Wave.Phase,
	}

	for _, id := range g.ECS.BalloonIDs() {
		b := g.ECS.Balloons[id]
		snap.Balloons = append(snap.Balloons, BalloonView{
			ID: id, DefID: b.DefID, X: b.X, Y: b.Y,
			Health: b.Health, Progress: b.Progress,
		})
	}
	for _, id := range g.ECS.TowerIDs() {
		t := g.ECS.Towers[id]
		snap.Towers = append(snap.Towers, TowerView{
			ID: id, DefID: t.DefID, X: t.X, Y: t.Y,
			Level: t.Level, Range: t.Range, Policy: t.Policy,
			NextUpgradeCost: t.NextUpgradeCost, Invested: t.Invested,
		})
	}
	for _, id := range g.ECS.ProjectileIDs() {
		p := g.ECS.Projectiles[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: id, X: p.X, Y: p.Y})
	}
	return snap
}
