package systems

import (
	"github.com/automoto/forest-adventure/archetypes"
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput snapshots the pressed state of every action from src.
// Must run BEFORE UpdateHero in the system order.
func NewUpdateInput(src platform.InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)
		input.Current = [cfg.ActionCount]bool{}
		for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
			input.Current[id] = src.Pressed(id)
		}
	}
}

// GetOrCreateInput returns the world's input singleton, spawning it on first use.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	return components.Input.Get(archetypes.Input.Spawn(e))
}

func ActionPressed(input *components.InputData, action cfg.ActionID) bool {
	return input.Current[action]
}
