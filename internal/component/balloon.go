// internal/component/balloon.go
package component

import "go-balloon-td/internal/defs"

// Balloon is a live enemy moving along the track. Position X/Y is derived
// from Progress by the movement system each tick; Progress is the source
// of truth.
type Balloon struct {
	DefID    defs.BalloonID
	Health   int
	Progress float64
	Speed    float64
	X, Y     float64
}
