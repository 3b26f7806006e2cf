// internal/system/projectile.go
package system

import (
	"go-balloon-td/internal/component"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/types"
)

// ProjectileSystem advances projectiles toward their targets and resolves
// hits. A projectile whose target has left the registry is discarded with
// no partial damage; committed shots never redirect to a new balloon.
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]

		target, exists := s.ecs.Balloons[proj.TargetID]
		if !exists || target.Health <= 0 {
			delete(s.ecs.Projectiles, id)
			continue
		}

		dx := target.X - proj.X
		dy := target.Y - proj.Y
		dist := hypot(dx, dy)
		step := proj.Speed * deltaTime

		if dist <= step || dist <= config.HitRadius {
			s.hit(id, proj, target)
			continue
		}

		proj.X += dx / dist * step
		proj.Y += dy / dist * step

		if s.outOfBounds(proj) {
			delete(s.ecs.Projectiles, id)
		}
	}
}

func (s *ProjectileSystem) hit(id types.EntityID, proj *component.Projectile, target *component.Balloon) {
	impactX, impactY := target.X, target.Y

	s.damage.Apply(proj.TargetID, proj.Damage)

	if proj.SplashRadius > 0 {
		// Full damage to every other live balloon around the impact, each
		// at most once per impact.
		for _, bid := range s.ecs.BalloonIDs() {
			if bid == proj.TargetID {
				continue
			}
			b := s.ecs.Balloons[bid]
			if b.Health <= 0 {
				continue
			}
			if hypot(b.X-impactX, b.Y-impactY) <= proj.SplashRadius {
				s.damage.Apply(bid, proj.Damage)
			}
		}
	}

	proj.Pierce--
	if proj.Pierce > 0 {
		if next := s.nextTarget(impactX, impactY, proj.TargetID); next != 0 {
			proj.TargetID = next
			proj.X, proj.Y = impactX, impactY
			return
		}
	}
	delete(s.ecs.Projectiles, id)
}

// nextTarget finds the closest live balloon to the impact point for a
// piercing projectile to continue into.
func (s *ProjectileSystem) nextTarget(x, y float64, exclude types.EntityID) types.EntityID {
	var best types.EntityID
	bestDist := config.PierceSeekRadius
	for _, id := range s.ecs.BalloonIDs() {
		if id == exclude {
			continue
		}
		b := s.ecs.Balloons[id]
		if b.Health <= 0 {
			continue
		}
		if d := hypot(b.X-x, b.Y-y); d < bestDist {
			bestDist = d
			best = id
		}
	}
	return best
}

func (s *ProjectileSystem) outOfBounds(proj *component.Projectile) bool {
	return proj.X < -config.ProjectileBounds ||
		proj.X > config.ScreenWidth+config.ProjectileBounds ||
		proj.Y < -config.ProjectileBounds ||
		proj.Y > config.ScreenHeight+config.ProjectileBounds
}
