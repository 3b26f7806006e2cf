// internal/defs/types.go
package defs

// BalloonID identifies a balloon definition in the library.
type BalloonID string

// TowerID identifies a tower definition in the library.
type TowerID string

// TargetPolicy selects which in-range balloon a tower fires at.
type TargetPolicy string

const (
	// PolicyFirst targets the balloon furthest along the track.
	PolicyFirst TargetPolicy = "FIRST"
	// PolicyLast targets the balloon closest to the track start.
	PolicyLast TargetPolicy = "LAST"
	// PolicyClosest targets the balloon nearest to the tower.
	PolicyClosest TargetPolicy = "CLOSEST"
	// PolicyStrongest targets the highest tier, ties broken by progress.
	PolicyStrongest TargetPolicy = "STRONGEST"
)
