// internal/event/types.go
package event

import (
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/types"
)

const (
	RoundEnded    EventType = "RoundEnded"    // payload RoundEndedData
	BalloonPopped EventType = "BalloonPopped" // payload BalloonPoppedData
	BalloonLeaked EventType = "BalloonLeaked" // payload BalloonLeakedData
	TowerPlaced   EventType = "TowerPlaced"   // payload types.EntityID
	TowerRemoved  EventType = "TowerRemoved"  // payload types.EntityID
)

// RoundEndedData reports a fully cleared round.
type RoundEndedData struct {
	Round int
}

// BalloonPoppedData reports a balloon destroyed by damage.
type BalloonPoppedData struct {
	ID     types.EntityID
	DefID  defs.BalloonID
	Reward int
}

// BalloonLeakedData reports a balloon that escaped off the track end.
type BalloonLeakedData struct {
	ID        types.EntityID
	DefID     defs.BalloonID
	LivesLost int
}
