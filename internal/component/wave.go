// internal/component/wave.go
package component

import "go-balloon-td/internal/defs"

// WavePhase is the round scheduler's state.
type WavePhase int

const (
	// WaveIdle waits for the player to start the round.
	WaveIdle WavePhase = iota
	// WaveSpawning releases the round's spawn events on schedule.
	WaveSpawning
	// WaveDraining has emitted every event and waits for the board to clear.
	WaveDraining
	// WaveComplete is the single tick on which the round bonus is paid.
	WaveComplete
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WaveComplete:
		return "complete"
	}
	return "unknown"
}

// SpawnEvent is one scheduled spawn: a balloon released Delay seconds
// after the previous event.
type SpawnEvent struct {
	BalloonID defs.BalloonID
	Delay     float64
}

// Wave is the scheduler's runtime state for the current round.
type Wave struct {
	Phase  WavePhase
	Events []SpawnEvent // remaining events, head first
	Timer  float64      // scaled seconds accumulated toward Events[0].Delay
}
