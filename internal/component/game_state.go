// internal/component/game_state.go
package component

// GameState is the single mutable record of player-facing state. It is
// owned by the ECS and passed around explicitly; nothing in the
// simulation reads it through package globals.
type GameState struct {
	Money int
	Lives int
	// Round is the current round number, 1-based.
	Round           int
	SpeedMultiplier int
	Paused          bool
	GameOver        bool
	Won             bool
}
