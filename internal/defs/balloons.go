// internal/defs/balloons.go
package defs

import "image/color"

// BalloonDefinition holds all the static data for a specific balloon tier.
type BalloonDefinition struct {
	ID     BalloonID `json:"id"`
	Name   string    `json:"name"`
	Tier   int       `json:"tier"`
	Health int       `json:"health"`
	Speed  float64   `json:"speed"` // track distance per second
	Reward int       `json:"reward"`
	// LeakCost is how many lives escape when the balloon reaches the end.
	LeakCost int `json:"leak_cost"`
	// ChildID/ChildCount describe the downgrade chain: when the balloon is
	// destroyed it spawns ChildCount balloons of ChildID at its progress.
	// An empty ChildID means the balloon pops outright.
	ChildID    BalloonID  `json:"child_id,omitempty"`
	ChildCount int        `json:"child_count,omitempty"`
	Color      color.RGBA `json:"color"`
	Radius     float32    `json:"radius"`
}

const (
	BalloonRed    BalloonID = "BALLOON_RED"
	BalloonBlue   BalloonID = "BALLOON_BLUE"
	BalloonGreen  BalloonID = "BALLOON_GREEN"
	BalloonYellow BalloonID = "BALLOON_YELLOW"
	BalloonPink   BalloonID = "BALLOON_PINK"
	BalloonMoab   BalloonID = "BALLOON_MOAB"
)

// BalloonLibrary is the library of all balloon definitions, keyed by ID.
var BalloonLibrary = map[BalloonID]BalloonDefinition{
	BalloonRed: {
		ID: BalloonRed, Name: "Red", Tier: 0,
		Health: 1, Speed: 60, Reward: 3, LeakCost: 1,
		Color: color.RGBA{255, 0, 0, 255}, Radius: 10,
	},
	BalloonBlue: {
		ID: BalloonBlue, Name: "Blue", Tier: 1,
		Health: 2, Speed: 70, Reward: 5, LeakCost: 2,
		ChildID: BalloonRed, ChildCount: 1,
		Color: color.RGBA{0, 0, 255, 255}, Radius: 10,
	},
	BalloonGreen: {
		ID: BalloonGreen, Name: "Green", Tier: 2,
		Health: 3, Speed: 80, Reward: 7, LeakCost: 3,
		ChildID: BalloonBlue, ChildCount: 1,
		Color: color.RGBA{0, 255, 0, 255}, Radius: 10,
	},
	BalloonYellow: {
		ID: BalloonYellow, Name: "Yellow", Tier: 3,
		Health: 4, Speed: 110, Reward: 10, LeakCost: 5,
		ChildID: BalloonGreen, ChildCount: 1,
		Color: color.RGBA{255, 255, 0, 255}, Radius: 10,
	},
	BalloonPink: {
		ID: BalloonPink, Name: "Pink", Tier: 4,
		Health: 5, Speed: 140, Reward: 15, LeakCost: 10,
		ChildID: BalloonYellow, ChildCount: 1,
		Color: color.RGBA{255, 192, 203, 255}, Radius: 10,
	},
	BalloonMoab: {
		ID: BalloonMoab, Name: "MOAB", Tier: 5,
		Health: 200, Speed: 40, Reward: 100, LeakCost: 50,
		ChildID: BalloonGreen, ChildCount: 40,
		Color: color.RGBA{60, 60, 70, 255}, Radius: 22,
	},
}
