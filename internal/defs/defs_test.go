package defs

import "testing"

func TestValidateBuiltins(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in definitions failed validation: %v", err)
	}
}

func TestValidateRejectsUnknownRoundBalloon(t *testing.T) {
	saved := Rounds
	defer func() { Rounds = saved }()

	Rounds = []RoundDefinition{
		{Groups: []SpawnGroup{{BalloonID: "BALLOON_NOPE", Count: 1}}, SpawnDelay: Rounds[0].SpawnDelay},
	}
	if err := Validate(); err == nil {
		t.Error("expected error for a round referencing an undefined balloon")
	}
}

func TestValidateRejectsBrokenDowngradeChain(t *testing.T) {
	saved := BalloonLibrary
	defer func() { BalloonLibrary = saved }()

	BalloonLibrary = map[BalloonID]BalloonDefinition{}
	for id, def := range saved {
		BalloonLibrary[id] = def
	}
	broken := BalloonLibrary[BalloonBlue]
	broken.ChildID = "BALLOON_NOPE"
	BalloonLibrary[BalloonBlue] = broken

	if err := Validate(); err == nil {
		t.Error("expected error for a child pointing at an undefined balloon")
	}
}

func TestValidateRejectsNonDescendingChild(t *testing.T) {
	saved := BalloonLibrary
	defer func() { BalloonLibrary = saved }()

	BalloonLibrary = map[BalloonID]BalloonDefinition{}
	for id, def := range saved {
		BalloonLibrary[id] = def
	}
	loop := BalloonLibrary[BalloonBlue]
	loop.ChildID = BalloonPink // higher tier than blue
	BalloonLibrary[BalloonBlue] = loop

	if err := Validate(); err == nil {
		t.Error("expected error for a child that is not a lower tier")
	}
}

func TestDowngradeChainsReachBaseTier(t *testing.T) {
	for id, def := range BalloonLibrary {
		seen := 0
		for def.ChildID != "" {
			def = BalloonLibrary[def.ChildID]
			seen++
			if seen > len(BalloonLibrary) {
				t.Fatalf("balloon %s: downgrade chain does not terminate", id)
			}
		}
	}
}

func TestRoundScheduleShape(t *testing.T) {
	if len(Rounds) != 20 {
		t.Fatalf("got %d rounds, want 20", len(Rounds))
	}
	// The final round is the boss wave.
	last := Rounds[len(Rounds)-1]
	if last.Groups[0].BalloonID != BalloonMoab {
		t.Errorf("final round spawns %s, want %s", last.Groups[0].BalloonID, BalloonMoab)
	}
}
