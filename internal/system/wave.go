// internal/system/wave.go
package system

import (
	"log"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/pkg/path"
)

// WaveSystem is the round scheduler: Idle -> Spawning -> Draining ->
// Complete -> Idle. It releases spawn events on the round's timeline and
// reports the round finished once the board is clear, cascade children
// included.
type WaveSystem struct {
	ecs        *entity.ECS
	track      *path.Path
	dispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, track *path.Path, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, track: track, dispatcher: dispatcher}
}

// Begin starts the current round if the scheduler is idle. Returns false
// when a round is already running or the schedule is exhausted.
func (s *WaveSystem) Begin() bool {
	wave := s.ecs.Wave
	if wave.Phase != component.WaveIdle {
		return false
	}
	round := s.ecs.GameState.Round
	if round < 1 || round > len(defs.Rounds) {
		return false
	}

	def := defs.Rounds[round-1]
	var events []component.SpawnEvent
	delay := def.SpawnDelay.Seconds()
	for _, group := range def.Groups {
		for i := 0; i < group.Count; i++ {
			events = append(events, component.SpawnEvent{BalloonID: group.BalloonID, Delay: delay})
		}
	}
	// The first balloon comes out the moment the round starts.
	events[0].Delay = 0

	wave.Events = events
	wave.Timer = 0
	wave.Phase = component.WaveSpawning
	return true
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave

	switch wave.Phase {
	case component.WaveSpawning:
		wave.Timer += deltaTime
		for len(wave.Events) > 0 && wave.Timer >= wave.Events[0].Delay {
			wave.Timer -= wave.Events[0].Delay
			s.spawn(wave.Events[0].BalloonID)
			wave.Events = wave.Events[1:]
		}
		if len(wave.Events) == 0 {
			wave.Phase = component.WaveDraining
		}

	case component.WaveDraining:
		if len(s.ecs.Balloons) == 0 {
			wave.Phase = component.WaveComplete
			s.dispatcher.Dispatch(event.Event{
				Type: event.RoundEnded,
				Data: event.RoundEndedData{Round: s.ecs.GameState.Round},
			})
		}
	}
}

func (s *WaveSystem) spawn(id defs.BalloonID) {
	def, ok := defs.BalloonLibrary[id]
	if !ok {
		log.Printf("WaveSystem: no definition for balloon %s, skipping spawn", id)
		return
	}
	start, _ := s.track.PositionAt(0)
	eid := s.ecs.NewEntity()
	s.ecs.Balloons[eid] = &component.Balloon{
		DefID:  id,
		Health: def.Health,
		Speed:  def.Speed,
		X:      start.X,
		Y:      start.Y,
	}
}
