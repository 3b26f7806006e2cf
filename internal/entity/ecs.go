// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-balloon-td/internal/component"
	"go-balloon-td/internal/config"
	"go-balloon-td/internal/types"
)

// ECS holds the live registries. Each entity kind is owned by exactly one
// map; systems mutate only through these.
type ECS struct {
	NextID      types.EntityID
	Balloons    map[types.EntityID]*component.Balloon
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Balloons:    make(map[types.EntityID]*component.Balloon),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{Phase: component.WaveIdle},
		GameState: &component.GameState{
			Money:           config.StartingMoney,
			Lives:           config.StartingLives,
			Round:           1,
			SpeedMultiplier: config.SpeedNormal,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// BalloonIDs returns the live balloon ids in ascending order. Systems
// iterate in id order so every tick is deterministic; plain map range
// order would make tie-breaks and replays flaky.
func (ecs *ECS) BalloonIDs() []types.EntityID {
	return sortedKeys(ecs.Balloons)
}

func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
