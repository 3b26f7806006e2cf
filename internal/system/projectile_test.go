package system

import (
	"testing"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
)

func newProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return NewProjectileSystem(ecs, NewDamageSystem(ecs, event.NewDispatcher()))
}

func addProjectile(ecs *entity.ECS, target types.EntityID, x, y float64, damage, pierce int, splash float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = &component.Projectile{
		TargetID:     target,
		X:            x,
		Y:            y,
		Damage:       damage,
		Speed:        300,
		SplashRadius: splash,
		Pierce:       pierce,
	}
	return id
}

func TestProjectileDiscardedWhenTargetGone(t *testing.T) {
	ecs := entity.NewECS()
	addProjectile(ecs, 999, 0, 0, 1, 1, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.1)
	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0 after target vanished", len(ecs.Projectiles))
	}
}

func TestProjectileDiscardedWhenTargetDead(t *testing.T) {
	ecs := entity.NewECS()
	target := addBalloon(ecs, defs.BalloonRed, 200)
	ecs.Balloons[target].Health = 0
	addProjectile(ecs, target, 0, 0, 1, 1, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.1)
	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0 after target died", len(ecs.Projectiles))
	}
}

func TestProjectileAdvancesTowardTarget(t *testing.T) {
	ecs := entity.NewECS()
	target := addBalloon(ecs, defs.BalloonRed, 200)
	id := addProjectile(ecs, target, 0, 0, 1, 1, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.1) // 30 units of travel, well short of 200
	proj := ecs.Projectiles[id]
	if proj == nil {
		t.Fatal("projectile removed before reaching target")
	}
	if proj.X != 30 || proj.Y != 0 {
		t.Errorf("projectile at (%v, %v), want (30, 0)", proj.X, proj.Y)
	}
	if ecs.Balloons[target].Health != 1 {
		t.Errorf("target health = %d, want untouched", ecs.Balloons[target].Health)
	}
}

func TestProjectileHitAppliesDamage(t *testing.T) {
	ecs := entity.NewECS()
	target := addBalloon(ecs, defs.BalloonRed, 20)
	addProjectile(ecs, target, 0, 0, 1, 1, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.1)
	if ecs.Balloons[target].Health != 0 {
		t.Errorf("target health = %d, want 0", ecs.Balloons[target].Health)
	}
	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0 after pierce exhausted", len(ecs.Projectiles))
	}
}

func TestSplashHitsEachNeighborOncePerImpact(t *testing.T) {
	ecs := entity.NewECS()
	primary := addBalloon(ecs, defs.BalloonRed, 100)
	near := addBalloon(ecs, defs.BalloonBlue, 120) // 20 from impact
	far := addBalloon(ecs, defs.BalloonBlue, 300)
	addProjectile(ecs, primary, 95, 0, 1, 1, 40)
	sys := newProjectileSystem(ecs)

	sys.Update(0.001) // within HitRadius already
	if _, alive := ecs.Balloons[primary]; alive && ecs.Balloons[primary].Health != 0 {
		t.Errorf("primary health = %d, want 0", ecs.Balloons[primary].Health)
	}
	if ecs.Balloons[near].Health != 1 {
		t.Errorf("near balloon health = %d, want 1 (one splash application)", ecs.Balloons[near].Health)
	}
	if ecs.Balloons[far].Health != 2 {
		t.Errorf("far balloon health = %d, want untouched", ecs.Balloons[far].Health)
	}
}

func TestPierceRetargetsClosestLiveBalloon(t *testing.T) {
	ecs := entity.NewECS()
	primary := addBalloon(ecs, defs.BalloonRed, 100)
	next := addBalloon(ecs, defs.BalloonRed, 150) // 50 from impact
	addBalloon(ecs, defs.BalloonRed, 300)         // beyond seek radius
	id := addProjectile(ecs, primary, 95, 0, 1, 2, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.001)
	proj := ecs.Projectiles[id]
	if proj == nil {
		t.Fatal("piercing projectile removed with a live balloon in seek range")
	}
	if proj.TargetID != next {
		t.Errorf("retargeted to %d, want closest live balloon %d", proj.TargetID, next)
	}
	if proj.Pierce != 1 {
		t.Errorf("pierce = %d, want 1", proj.Pierce)
	}
	if proj.X != 100 || proj.Y != 0 {
		t.Errorf("projectile continues from (%v, %v), want impact point (100, 0)", proj.X, proj.Y)
	}
}

func TestPierceExpiresWithoutNearbyTarget(t *testing.T) {
	ecs := entity.NewECS()
	primary := addBalloon(ecs, defs.BalloonRed, 100)
	addBalloon(ecs, defs.BalloonRed, 500) // out of seek range
	addProjectile(ecs, primary, 95, 0, 1, 2, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.001)
	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0 when no live balloon is in seek range", len(ecs.Projectiles))
	}
}

func TestProjectileCulledOutOfBounds(t *testing.T) {
	ecs := entity.NewECS()
	target := addBalloon(ecs, defs.BalloonRed, 0)
	ecs.Balloons[target].X = 5000
	id := addProjectile(ecs, target, 845, 0, 1, 1, 0)
	sys := newProjectileSystem(ecs)

	sys.Update(0.1) // carries it past the playfield margin
	if _, ok := ecs.Projectiles[id]; ok {
		t.Error("projectile survived outside the playfield margin")
	}
}
