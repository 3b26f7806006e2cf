// internal/defs/rounds.go
package defs

import "time"

// SpawnGroup is a run of identical balloons inside a round.
type SpawnGroup struct {
	BalloonID BalloonID `json:"balloon_id"`
	Count     int       `json:"count"`
}

// RoundDefinition describes one round: the spawn groups released in order,
// with SpawnDelay between consecutive balloons. The first balloon of a
// round spawns immediately when the round starts.
type RoundDefinition struct {
	Groups     []SpawnGroup  `json:"groups"`
	SpawnDelay time.Duration `json:"spawn_delay"`
}

// Rounds is the full 20-round schedule. Rounds[0] is round 1.
var Rounds = []RoundDefinition{
	// Rounds 1-5: intro waves.
	{Groups: []SpawnGroup{{BalloonRed, 10}}, SpawnDelay: 500 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonRed, 15}}, SpawnDelay: 500 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonRed, 20}}, SpawnDelay: 500 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonBlue, 10}}, SpawnDelay: 500 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonBlue, 15}}, SpawnDelay: 500 * time.Millisecond},
	// Rounds 6-9: intermediate.
	{Groups: []SpawnGroup{{BalloonGreen, 10}}, SpawnDelay: 400 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonGreen, 15}}, SpawnDelay: 400 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonYellow, 10}}, SpawnDelay: 400 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonPink, 10}}, SpawnDelay: 400 * time.Millisecond},
	// Round 10: first MOAB.
	{Groups: []SpawnGroup{{BalloonMoab, 1}}, SpawnDelay: 100 * time.Millisecond},
	// Rounds 11-15: big single-color waves.
	{Groups: []SpawnGroup{{BalloonRed, 25}}, SpawnDelay: 300 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonBlue, 20}}, SpawnDelay: 300 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonGreen, 20}}, SpawnDelay: 300 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonYellow, 15}}, SpawnDelay: 300 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonPink, 20}}, SpawnDelay: 300 * time.Millisecond},
	// Rounds 16-19: mixed waves.
	{Groups: []SpawnGroup{{BalloonRed, 10}, {BalloonBlue, 10}}, SpawnDelay: 200 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonBlue, 10}, {BalloonGreen, 10}}, SpawnDelay: 200 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonGreen, 10}, {BalloonYellow, 10}}, SpawnDelay: 200 * time.Millisecond},
	{Groups: []SpawnGroup{{BalloonYellow, 10}, {BalloonPink, 10}}, SpawnDelay: 200 * time.Millisecond},
	// Round 20: final bosses.
	{Groups: []SpawnGroup{{BalloonMoab, 3}}, SpawnDelay: 100 * time.Millisecond},
}
