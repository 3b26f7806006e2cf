package system

import (
	"testing"

	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
)

func TestMovementAdvancesAlongTrack(t *testing.T) {
	ecs := entity.NewECS()
	track := testTrack(t)
	sys := NewMovementSystem(ecs, track, event.NewDispatcher())

	id := addBalloon(ecs, defs.BalloonRed, 0)
	sys.Update(1.0) // red speed is 60

	b := ecs.Balloons[id]
	if b.Progress != 60 {
		t.Errorf("progress = %v, want 60", b.Progress)
	}
	if b.X != 60 || b.Y != 0 {
		t.Errorf("position = (%v,%v), want (60,0)", b.X, b.Y)
	}
}

func TestLeakCostsConfiguredLivesExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	track := testTrack(t)
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.BalloonLeaked, rec)
	sys := NewMovementSystem(ecs, track, dispatcher)

	id := addBalloon(ecs, defs.BalloonPink, 999) // leak cost 10
	startLives := ecs.GameState.Lives

	sys.Update(1.0)
	if _, alive := ecs.Balloons[id]; alive {
		t.Fatal("leaked balloon still in registry")
	}
	if got := startLives - ecs.GameState.Lives; got != 10 {
		t.Errorf("lives lost = %d, want 10", got)
	}
	if rec.count(event.BalloonLeaked) != 1 {
		t.Errorf("leak events = %d, want 1", rec.count(event.BalloonLeaked))
	}

	// A second update must not charge again.
	sys.Update(1.0)
	if got := startLives - ecs.GameState.Lives; got != 10 {
		t.Errorf("lives lost after second update = %d, want 10", got)
	}
}

func TestLeakClampsLivesAtZero(t *testing.T) {
	ecs := entity.NewECS()
	ecs.GameState.Lives = 5
	sys := NewMovementSystem(ecs, testTrack(t), event.NewDispatcher())

	addBalloon(ecs, defs.BalloonMoab, 999) // leak cost 50
	sys.Update(1.0)

	if ecs.GameState.Lives != 0 {
		t.Errorf("lives = %d, want 0 (clamped)", ecs.GameState.Lives)
	}
}
