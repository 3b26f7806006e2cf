// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-balloon-td/internal/config"
	"go-balloon-td/internal/defs"
	"go-balloon-td/internal/state"
	"go-balloon-td/pkg/path"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	trackFile := flag.String("track", "", "CSV waypoint file (x,y per line); built-in track when empty")
	towersFile := flag.String("towers", "", "JSON tower definitions overriding the built-in table")
	balloonsFile := flag.String("balloons", "", "JSON balloon definitions overriding the built-in table")
	flag.Parse()

	if *towersFile != "" {
		if err := defs.LoadTowerDefinitions(*towersFile); err != nil {
			log.Fatal(err)
		}
	}
	if *balloonsFile != "" {
		if err := defs.LoadBalloonDefinitions(*balloonsFile); err != nil {
			log.Fatal(err)
		}
	}
	if err := defs.Validate(); err != nil {
		log.Fatalf("invalid game configuration: %v", err)
	}

	track := path.DefaultTrack()
	if *trackFile != "" {
		points, err := path.LoadCSV(*trackFile)
		if err != nil {
			log.Fatal(err)
		}
		track, err = path.New(points)
		if err != nil {
			log.Fatalf("invalid track: %v", err)
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, track))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Balloon TD")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
