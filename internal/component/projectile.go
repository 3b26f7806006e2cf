// internal/component/projectile.go
package component

import "go-balloon-td/internal/types"

// Projectile is an in-flight shot. TargetID is a weak reference: the
// resolver checks it against the balloon registry every tick and discards
// the projectile if the target is gone.
type Projectile struct {
	TargetID     types.EntityID
	X, Y         float64
	Damage       int
	Speed        float64
	SplashRadius float64
	Pierce       int
}
