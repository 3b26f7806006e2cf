// internal/system/movement.go
package system

import (
	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
	"go-balloon-td/pkg/path"
)

// MovementSystem advances balloons along the track and handles leaks.
type MovementSystem struct {
	ecs        *entity.ECS
	track      *path.Path
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, track *path.Path, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, track: track, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	length := s.track.Length()
	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		b.Progress += b.Speed * deltaTime

		if b.Progress >= length {
			s.leak(id, b)
			continue
		}

		pos, _ := s.track.PositionAt(b.Progress)
		b.X, b.Y = pos.X, pos.Y
	}
}

// leak removes an escaped balloon and charges its leak cost. Leaking is a
// normal terminal event: the balloon forfeits its reward and spawns no
// children.
func (s *MovementSystem) leak(id types.EntityID, b *component.Balloon) {
	def := defs.BalloonLibrary[b.DefID]
	gs := s.ecs.GameState
	gs.Lives -= def.LeakCost
	if gs.Lives < 0 {
		gs.Lives = 0
	}
	delete(s.ecs.Balloons, id)
	s.dispatcher.Dispatch(event.Event{
		Type: event.BalloonLeaked,
		Data: event.BalloonLeakedData{ID: id, DefID: b.DefID, LivesLost: def.LeakCost},
	})
}
