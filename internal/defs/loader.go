// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions replaces the built-in TowerLibrary with definitions
// read from a JSON file.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[TowerID]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadBalloonDefinitions replaces the built-in BalloonLibrary with
// definitions read from a JSON file.
func LoadBalloonDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read balloon definitions file: %w", err)
	}

	var balloonDefs []BalloonDefinition
	if err := json.Unmarshal(file, &balloonDefs); err != nil {
		return fmt.Errorf("failed to unmarshal balloon definitions: %w", err)
	}

	BalloonLibrary = make(map[BalloonID]BalloonDefinition)
	for _, def := range balloonDefs {
		BalloonLibrary[def.ID] = def
	}
	return nil
}

// Validate cross-checks the definition tables once at startup, before the
// simulation begins. A failure here is fatal configuration, not a runtime
// fault.
func Validate() error {
	if len(BalloonLibrary) == 0 {
		return fmt.Errorf("balloon library is empty")
	}
	if len(TowerLibrary) == 0 {
		return fmt.Errorf("tower library is empty")
	}
	for id, def := range BalloonLibrary {
		if def.Health <= 0 {
			return fmt.Errorf("balloon %s: health must be positive", id)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("balloon %s: speed must be positive", id)
		}
		if def.LeakCost <= 0 {
			return fmt.Errorf("balloon %s: leak cost must be positive", id)
		}
		if def.ChildID != "" {
			child, ok := BalloonLibrary[def.ChildID]
			if !ok {
				return fmt.Errorf("balloon %s: unknown child %s", id, def.ChildID)
			}
			if child.Tier >= def.Tier {
				return fmt.Errorf("balloon %s: child %s is not a lower tier", id, def.ChildID)
			}
			if def.ChildCount <= 0 {
				return fmt.Errorf("balloon %s: child count must be positive", id)
			}
		}
	}
	for id, def := range TowerLibrary {
		if def.Cost <= 0 {
			return fmt.Errorf("tower %s: cost must be positive", id)
		}
		if def.FireRate <= 0 {
			return fmt.Errorf("tower %s: fire rate must be positive", id)
		}
		if def.ProjectileSpeed <= 0 {
			return fmt.Errorf("tower %s: projectile speed must be positive", id)
		}
		if def.Pierce <= 0 {
			return fmt.Errorf("tower %s: pierce must be positive", id)
		}
		if def.MaxLevel < 1 {
			return fmt.Errorf("tower %s: max level must be at least 1", id)
		}
	}
	for i, round := range Rounds {
		if len(round.Groups) == 0 {
			return fmt.Errorf("round %d: no spawn groups", i+1)
		}
		if round.SpawnDelay <= 0 {
			return fmt.Errorf("round %d: spawn delay must be positive", i+1)
		}
		for _, group := range round.Groups {
			if _, ok := BalloonLibrary[group.BalloonID]; !ok {
				return fmt.Errorf("round %d references undefined balloon %s", i+1, group.BalloonID)
			}
			if group.Count <= 0 {
				return fmt.Errorf("round %d: group count must be positive", i+1)
			}
		}
	}
	return nil
}
