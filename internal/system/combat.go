// internal/system/combat.go
package system

import (
	"math"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/types"
)

// CombatSystem matches towers to in-range balloons and emits projectiles.
// Towers evaluate against a snapshot of the balloon registry taken at the
// start of the phase, so every tower in a tick sees the same candidates.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	candidates := s.ecs.BalloonIDs()

	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]

		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
		}
		if tower.Cooldown > 0 {
			continue
		}

		targetID := s.SelectTarget(tower, candidates)
		if targetID == 0 {
			continue
		}

		s.fire(tower, targetID)
		tower.Cooldown = 1.0 / tower.FireRate
	}
}

// SelectTarget picks one balloon per the tower's policy, or 0 when none
// is in range. Ties resolve to the earliest-created balloon.
func (s *CombatSystem) SelectTarget(tower *component.Tower, candidates []types.EntityID) types.EntityID {
	var best types.EntityID
	var bestProgress, bestDist float64
	var bestTier int

	for _, id := range candidates {
		b, ok := s.ecs.Balloons[id]
		if !ok {
			continue
		}
		d := hypot(b.X-tower.X, b.Y-tower.Y)
		if d > tower.Range {
			continue
		}

		take := best == 0
		if !take {
			switch tower.Policy {
			case defs.PolicyLast:
				take = b.Progress < bestProgress
			case defs.PolicyClosest:
				take = d < bestDist
			case defs.PolicyStrongest:
				tier := defs.BalloonLibrary[b.DefID].Tier
				take = tier > bestTier || (tier == bestTier && b.Progress > bestProgress)
			default: // PolicyFirst
				take = b.Progress > bestProgress
			}
		}
		if take {
			best = id
			bestProgress = b.Progress
			bestDist = d
			bestTier = defs.BalloonLibrary[b.DefID].Tier
		}
	}
	return best
}

func (s *CombatSystem) fire(tower *component.Tower, targetID types.EntityID) {
	def := defs.TowerLibrary[tower.DefID]
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID:     targetID,
		X:            tower.X,
		Y:            tower.Y,
		Damage:       tower.Damage,
		Speed:        def.ProjectileSpeed,
		SplashRadius: def.SplashRadius,
		Pierce:       def.Pierce,
	}
}

func hypot(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
