// internal/ui/shop.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-balloon-td/internal/app"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/defs"
)

// Shop is the tower purchase strip plus the upgrade/sell controls for the
// selected tower.
type Shop struct {
	order         []defs.TowerID
	towerButtons  []*Button
	UpgradeButton *Button
	SellButton    *Button
}

func NewShop() *Shop {
	s := &Shop{
		order: []defs.TowerID{defs.TowerDart, defs.TowerSniper, defs.TowerTac, defs.TowerSuper},
	}
	for i, id := range s.order {
		def := defs.TowerLibrary[id]
		label := fmt.Sprintf("%s $%d", def.Name, def.Cost)
		s.towerButtons = append(s.towerButtons, NewButton(680, float64(70+i*45), 110, 35, label))
	}
	s.UpgradeButton = NewButton(460, 560, 160, 30, "Upgrade")
	s.SellButton = NewButton(640, 560, 150, 30, "Sell")
	return s
}

// TowerAt returns the tower type whose shop button contains the point.
func (s *Shop) TowerAt(x, y float64) (defs.TowerID, bool) {
	for i, b := range s.towerButtons {
		if b.Contains(x, y) {
			return s.order[i], true
		}
	}
	return "", false
}

func (s *Shop) Draw(screen *ebiten.Image, snap app.Snapshot, selected *app.TowerView) {
	for i, b := range s.towerButtons {
		def := defs.TowerLibrary[s.order[i]]
		if snap.Money >= def.Cost {
			b.Fill = config.ButtonOKColor
		} else {
			b.Fill = config.ButtonBadColor
		}
		b.Draw(screen)
	}

	if selected != nil {
		def := defs.TowerLibrary[selected.DefID]
		if selected.Level >= def.MaxLevel {
			s.UpgradeButton.Label = "Max level"
		} else {
			s.UpgradeButton.Label = fmt.Sprintf("Upgrade $%d", selected.NextUpgradeCost)
		}
		refund := int(float64(selected.Invested) * config.SellRefundFactor)
		s.SellButton.Label = fmt.Sprintf("Sell $%d", refund)
		s.UpgradeButton.Draw(screen)
		s.SellButton.Draw(screen)
	}
}
