// internal/component/tower.go
package component

import "go-balloon-td/internal/defs"

// Tower is a placed defender. Stats start from the definition and grow
// with upgrades; the current values live here so the combat system never
// recomputes level scaling.
type Tower struct {
	DefID defs.TowerID
	Level int
	X, Y  float64

	Damage   int
	Range    float64
	FireRate float64 // shots per second

	// Cooldown counts down in scaled seconds; the tower may fire when it
	// reaches zero.
	Cooldown float64
	Policy   defs.TargetPolicy

	// Invested is the cumulative spend (purchase plus upgrades); the sell
	// refund is a fraction of it.
	Invested        int
	NextUpgradeCost int
}
