package system

import (
	"testing"

	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
)

func TestApplyFloorsHealthAtZero(t *testing.T) {
	ecs := entity.NewECS()
	id := addBalloon(ecs, defs.BalloonMoab, 10)
	sys := NewDamageSystem(ecs, event.NewDispatcher())

	sys.Apply(id, 500)
	if ecs.Balloons[id].Health != 0 {
		t.Errorf("health = %d, want 0", ecs.Balloons[id].Health)
	}

	// Further hits on a dead balloon change nothing.
	sys.Apply(id, 3)
	if ecs.Balloons[id].Health != 0 {
		t.Errorf("health = %d after hitting dead balloon, want 0", ecs.Balloons[id].Health)
	}
}

func TestApplyIgnoresUnknownBalloon(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewDamageSystem(ecs, event.NewDispatcher())
	sys.Apply(42, 1) // must not panic
}

func TestResolvePopsRedWithoutChildren(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.BalloonPopped, rec)
	id := addBalloon(ecs, defs.BalloonRed, 10)
	sys := NewDamageSystem(ecs, dispatcher)

	moneyBefore := ecs.GameState.Money
	sys.Apply(id, 1)
	sys.Resolve()

	if len(ecs.Balloons) != 0 {
		t.Errorf("balloons = %d, want 0 (red has no children)", len(ecs.Balloons))
	}
	if got := ecs.GameState.Money - moneyBefore; got != 3 {
		t.Errorf("reward = %d, want 3", got)
	}
	if rec.count(event.BalloonPopped) != 1 {
		t.Errorf("popped events = %d, want 1", rec.count(event.BalloonPopped))
	}
}

func TestResolveSpawnsChildAtParentProgress(t *testing.T) {
	ecs := entity.NewECS()
	id := addBalloon(ecs, defs.BalloonBlue, 37.5)
	sys := NewDamageSystem(ecs, event.NewDispatcher())

	sys.Apply(id,2)
	sys.Resolve()

	if len(ecs.Balloons) != 1 {
		t.Fatalf("balloons = %d, want 1 red child", len(ecs.Balloons))
	}
	for _, child := range ecs.Balloons {
		if child.DefID != defs.BalloonRed {
			t.Errorf("child def = %s, want %s", child.DefID, defs.BalloonRed)
		}
		if child.Progress != 37.5 {
			t.Errorf("child progress = %v, want parent's 37.5", child.Progress)
		}
		if child.Health != defs.BalloonLibrary[defs.BalloonRed].Health {
			t.Errorf("child health = %d, want full", child.Health)
		}
	}
}

func TestResolveMoabSpawnsFortyGreens(t *testing.T) {
	ecs := entity.NewECS()
	id := addBalloon(ecs, defs.BalloonMoab, 250)
	sys := NewDamageSystem(ecs, event.NewDispatcher())

	moneyBefore := ecs.GameState.Money
	sys.Apply(id, 200)
	sys.Resolve()

	if len(ecs.Balloons) != 40 {
		t.Fatalf("balloons = %d, want 40 greens", len(ecs.Balloons))
	}
	for _, child := range ecs.Balloons {
		if child.DefID != defs.BalloonGreen {
			t.Errorf("child def = %s, want %s", child.DefID, defs.BalloonGreen)
		}
		if child.Progress != 250 {
			t.Errorf("child progress = %v, want parent's 250", child.Progress)
		}
	}
	// Only the MOAB's own reward is credited; children are still alive.
	if got := ecs.GameState.Money - moneyBefore; got != 100 {
		t.Errorf("reward = %d, want 100", got)
	}
}

func TestResolveIsIdempotentAcrossTicks(t *testing.T) {
	ecs := entity.NewECS()
	id := addBalloon(ecs, defs.BalloonRed, 10)
	sys := NewDamageSystem(ecs, event.NewDispatcher())

	sys.Apply(id, 1)
	sys.Resolve()
	money := ecs.GameState.Money
	sys.Resolve()
	if ecs.GameState.Money != money {
		t.Errorf("money changed on empty resolve: %d -> %d", money, ecs.GameState.Money)
	}
}
