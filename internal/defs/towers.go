// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific tower type.
// Per-level growth is applied on upgrade: +1 damage, range and fire rate
// x1.1, next upgrade cost x1.5.
type TowerDefinition struct {
	ID     TowerID `json:"id"`
	Name   string  `json:"name"`
	Cost   int     `json:"cost"`
	Damage int     `json:"damage"`
	Range  float64 `json:"range"`
	// FireRate is shots per second.
	FireRate        float64 `json:"fire_rate"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	// SplashRadius 0 means single-target hits.
	SplashRadius float64 `json:"splash_radius,omitempty"`
	// Pierce is how many balloons one projectile can hit.
	Pierce      int        `json:"pierce"`
	MaxLevel    int        `json:"max_level"`
	UpgradeCost int        `json:"upgrade_cost"`
	Color       color.RGBA `json:"color"`
}

const (
	TowerDart   TowerID = "TOWER_DART"
	TowerSniper TowerID = "TOWER_SNIPER"
	TowerTac    TowerID = "TOWER_TAC"
	TowerSuper  TowerID = "TOWER_SUPER"
)

// Per-level upgrade growth factors.
const (
	UpgradeRangeGrowth    = 1.1
	UpgradeFireRateGrowth = 1.1
	UpgradeCostGrowth     = 1.5
)

// TowerLibrary is the library of all tower definitions, keyed by ID.
var TowerLibrary = map[TowerID]TowerDefinition{
	TowerDart: {
		ID: TowerDart, Name: "Dart", Cost: 100,
		Damage: 1, Range: 100, FireRate: 1.0,
		ProjectileSpeed: 300, Pierce: 1,
		MaxLevel: 5, UpgradeCost: 100,
		Color: color.RGBA{120, 80, 40, 255},
	},
	TowerSniper: {
		ID: TowerSniper, Name: "Sniper", Cost: 200,
		Damage: 2, Range: 100000, FireRate: 0.5,
		ProjectileSpeed: 1200, Pierce: 2,
		MaxLevel: 5, UpgradeCost: 100,
		Color: color.RGBA{60, 90, 60, 255},
	},
	TowerTac: {
		ID: TowerTac, Name: "Tac", Cost: 300,
		Damage: 1, Range: 60, FireRate: 1.5,
		ProjectileSpeed: 250, SplashRadius: 40, Pierce: 1,
		MaxLevel: 5, UpgradeCost: 100,
		Color: color.RGBA{90, 60, 120, 255},
	},
	TowerSuper: {
		ID: TowerSuper, Name: "Super", Cost: 2000,
		Damage: 1, Range: 150, FireRate: 2.5,
		ProjectileSpeed: 600, Pierce: 1,
		MaxLevel: 5, UpgradeCost: 100,
		Color: color.RGBA{230, 200, 60, 255},
	},
}
