// internal/app/game.go
package app

import (
	"go-balloon-td/internal/component"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/entity"
	"go-balloon-td/internal/event"
	"go-balloon-td/internal/system"
	"go-balloon-td/pkg/path"
)

// Game wires the registries and systems together and owns the per-tick
// phase ordering. The rendering layer talks to it only through the
// exported methods and the Snapshot returned by Tick.
type Game struct {
	ECS             *entity.ECS
	Track           *path.Path
	EventDispatcher *event.Dispatcher

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	DamageSystem     *system.DamageSystem
}

// NewGame builds a game on the given track. Definition tables must have
// been validated before this is called.
func NewGame(track *path.Path) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		Track:           track,
		EventDispatcher: dispatcher,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, track, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, track, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.DamageSystem = system.NewDamageSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem)

	dispatcher.Subscribe(event.RoundEnded, &roundListener{game: g})
	return g
}

// Tick advances the simulation by dt seconds of real time and returns the
// observable state for the renderer. At 2x speed it runs two fixed
// sub-steps of the same dt, so a sped-up game passes through exactly the
// states a normal-speed game would.
func (g *Game) Tick(dt float64) Snapshot {
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	gs := g.ECS.GameState
	if !gs.Paused && !gs.GameOver {
		for i := 0; i < gs.SpeedMultiplier; i++ {
			g.step(dt)
			if gs.GameOver {
				break
			}
		}
	}
	return g.Snapshot()
}

// step is one simulation sub-step. Phase order is fixed: scheduler,
// movement, targeting, projectiles, cascade, then bookkeeping. Later
// phases depend on the mutations of earlier ones within the same step.
func (g *Game) step(dt float64) {
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.DamageSystem.Resolve()

	gs := g.ECS.GameState
	if gs.Lives <= 0 && !gs.GameOver {
		gs.Lives = 0
		gs.GameOver = true
	}
}

// StartRound starts the current round when the scheduler is idle. While a
// round is running the same request toggles game speed instead; this is
// the play button doubling as the speed button.
func (g *Game) StartRound() {
	gs := g.ECS.GameState
	if gs.GameOver {
		return
	}
	switch g.ECS.Wave.Phase {
	case component.WaveIdle:
		g.WaveSystem.Begin()
	case component.WaveSpawning, component.WaveDraining:
		g.ToggleSpeed()
	}
}

// ToggleSpeed flips between normal and fast simulation speed.
func (g *Game) ToggleSpeed() {
	gs := g.ECS.GameState
	if gs.SpeedMultiplier == config.SpeedNormal {
		gs.SpeedMultiplier = config.SpeedFast
	} else {
		gs.SpeedMultiplier = config.SpeedNormal
	}
}

// TogglePause freezes and unfreezes the simulation clock.
func (g *Game) TogglePause() {
	g.ECS.GameState.Paused = !g.ECS.GameState.Paused
}

// roundListener pays the round bonus and advances the round index when
// the wave scheduler reports a cleared round.
type roundListener struct {
	game *Game
}

func (l *roundListener) OnEvent(e event.Event) {
	if e.Type != event.RoundEnded {
		return
	}
	g := l.game
	gs := g.ECS.GameState

	gs.Money += config.RoundBonusPerRound * gs.Round
	if gs.Round >= len(defs.Rounds) {
		gs.GameOver = true
		gs.Won = true
	} else {
		gs.Round++
	}
	g.ECS.Wave.Phase = component.WaveIdle
}
