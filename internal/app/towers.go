// internal/app/towers.go
package app

import (
	"math"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
)

// PlaceTower buys and places a tower of the given type. Placement fails
// with ErrInvalidPlacement when the spot collides with the track or
// another tower, lies outside the board, or money is short.
func (g *Game) PlaceTower(towerID defs.TowerID, x, y float64) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[towerID]
	if !ok {
		return 0, ErrInvalidPlacement
	}
	gs := g.ECS.GameState
	if gs.Money < def.Cost {
		return 0, ErrInvalidPlacement
	}
	if !g.CanPlaceAt(x, y) {
		return 0, ErrInvalidPlacement
	}

	gs.Money -= def.Cost
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{
		DefID:           towerID,
		Level:           1,
		X:               x,
		Y:               y,
		Damage:          def.Damage,
		Range:           def.Range,
		FireRate:        def.FireRate,
		Policy:          defs.PolicyFirst,
		Invested:        def.Cost,
		NextUpgradeCost: def.UpgradeCost,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// CanPlaceAt reports whether the spot is geometrically valid for a tower:
// on the board, clear of the track, and clear of other towers.
func (g *Game) CanPlaceAt(x, y float64) bool {
	if x < config.PlacementMargin || x > config.ScreenWidth-config.PlacementMargin ||
		y < config.PlacementMargin || y > config.ScreenHeight-config.PlacementMargin {
		return false
	}
	if g.Track.DistanceTo(x, y) < config.PathClearance {
		return false
	}
	for _, t := range g.ECS.Towers {
		dx, dy := t.X-x, t.Y-y
		if math.Sqrt(dx*dx+dy*dy) < config.TowerSpacing {
			return false
		}
	}
	return true
}

// UpgradeTower raises a tower one level: +1 damage, range and fire rate
// scaled up, next upgrade costing more. Unknown ids are a no-op.
func (g *Game) UpgradeTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return nil
	}
	def := defs.TowerLibrary[tower.DefID]
	if tower.Level >= def.MaxLevel {
		return ErrMaxTierReached
	}
	gs := g.ECS.GameState
	if gs.Money < tower.NextUpgradeCost {
		return ErrInsufficientFunds
	}

	gs.Money -= tower.NextUpgradeCost
	tower.Invested += tower.NextUpgradeCost
	tower.Level++
	tower.Damage++
	tower.Range *= defs.UpgradeRangeGrowth
	tower.FireRate *= defs.UpgradeFireRateGrowth
	tower.NextUpgradeCost = int(float64(tower.NextUpgradeCost) * defs.UpgradeCostGrowth)
	return nil
}

// SellTower removes a tower and refunds a fraction of everything spent on
// it. Selling an unknown id is a deliberate no-op returning 0: the UI may
// race a double-click against an earlier sell. Projectiles the tower
// already fired stay in flight.
func (g *Game) SellTower(id types.EntityID) int {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0
	}
	refund := int(float64(tower.Invested) * config.SellRefundFactor)
	g.ECS.GameState.Money += refund
	delete(g.ECS.Towers, id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: id})
	return refund
}

// SetTowerPolicy changes a tower's targeting policy. Unknown ids are a
// no-op.
func (g *Game) SetTowerPolicy(id types.EntityID, policy defs.TargetPolicy) {
	if tower, ok := g.ECS.Towers[id]; ok {
		tower.Policy = policy
	}
}
