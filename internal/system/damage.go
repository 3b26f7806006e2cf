// internal/system/damage.go
package system

import (
	"log"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
)

// DamageSystem floors health at zero and, at the end of each tick,
// converts depleted balloons into rewards and child spawns. Kills and
// spawns collect into side buffers so no registry is mutated while the
// projectile phase is still iterating.
type DamageSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{ecs: ecs, dispatcher: dispatcher}
}

// Apply subtracts damage from a balloon, floored at zero. Balloons at
// zero health stay in the registry until Resolve runs; they no longer
// count as live for splash or pierce selection.
func (s *DamageSystem) Apply(id types.EntityID, damage int) {
	b, ok := s.ecs.Balloons[id]
	if !ok || b.Health <= 0 {
		return
	}
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}
}

type childSpawn struct {
	defID    defs.BalloonID
	progress float64
	x, y     float64
}

// Resolve runs after projectile resolution. It awards rewards, removes
// dead balloons and spawns their children, all within the same tick so
// the round-complete check never sees a half-finished cascade. Children
// spawn at full health, so one pass covers the whole cascade.
func (s *DamageSystem) Resolve() {
	gs := s.ecs.GameState
	var spawns []childSpawn

	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		if b.Health > 0 {
			continue
		}

		def, ok := defs.BalloonLibrary[b.DefID]
		if !ok {
			log.Printf("DamageSystem: no definition for balloon %s, removing", b.DefID)
			delete(s.ecs.Balloons, id)
			continue
		}

		gs.Money += def.Reward
		if def.ChildID != "" {
			for i := 0; i < def.ChildCount; i++ {
				spawns = append(spawns, childSpawn{
					defID:    def.ChildID,
					progress: b.Progress,
					x:        b.X,
					y:        b.Y,
				})
			}
		}

		delete(s.ecs.Balloons, id)
		s.dispatcher.Dispatch(event.Event{
			Type: event.BalloonPopped,
			Data: event.BalloonPoppedData{ID: id, DefID: b.DefID, Reward: def.Reward},
		})
	}

	for _, c := range spawns {
		def := defs.BalloonLibrary[c.defID]
		id := s.ecs.NewEntity()
		s.ecs.Balloons[id] = &component.Balloon{
			DefID:    c.defID,
			Health:   def.Health,
			Progress: c.progress,
			Speed:    def.Speed,
			X:        c.x,
			Y:        c.y,
		}
	}
}
