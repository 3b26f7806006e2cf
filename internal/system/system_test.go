package system

import (
	"testing"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/types"
	"go-balloon-td/pkg/path"
)

// testTrack is a 1000-long straight track so progress equals X.
func testTrack(t *testing.T) *path.Path {
	t.Helper()
	p, err := path.New([]path.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// addBalloon registers a balloon at the given progress on a straight
// track, with X mirroring progress the way the movement system would.
func addBalloon(ecs *entity.ECS, defID defs.BalloonID, progress float64) types.EntityID {
	def := defs.BalloonLibrary[defID]
	id := ecs.NewEntity()
	ecs.Balloons[id] = &component.Balloon{
		DefID:    defID,
		Health:   def.Health,
		Progress: progress,
		Speed:    def.Speed,
		X:        progress,
		Y:        0,
	}
	return id
}

func addTower(ecs *entity.ECS, defID defs.TowerID, x, y float64, policy defs.TargetPolicy) types.EntityID {
	def := defs.TowerLibrary[defID]
	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{
		DefID:    defID,
		Level:    1,
		X:        x,
		Y:        y,
		Damage:   def.Damage,
		Range:    def.Range,
		FireRate: def.FireRate,
		Policy:   policy,
	}
	return id
}

// eventRecorder collects dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
