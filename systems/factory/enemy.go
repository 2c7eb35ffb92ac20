package factory

import (
	"math/rand/v2"

	"github.com/automoto/forest-adventure/archetypes"
	"github.com/automoto/forest-adventure/assets/animations"
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/gamemath"
	"github.com/automoto/forest-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// EnemyDirections returns the direction set selected by config.Enemy.DirectionSet.
func EnemyDirections() []math.Vec2 {
	if cfg.Enemy.DirectionSet == cfg.DirectionsCardinal {
		return gamemath.CardinalDirections
	}
	return gamemath.OctalDirections
}

// RollDirection picks a direction uniformly from the configured set.
func RollDirection(rng *rand.Rand) math.Vec2 {
	dirs := EnemyDirections()
	return dirs[rng.IntN(len(dirs))]
}

// RollMoveInterval samples a reroll interval uniformly from the inclusive configured range.
func RollMoveInterval(rng *rand.Rand) int {
	lo, hi := cfg.Enemy.MoveIntervalMin, cfg.Enemy.MoveIntervalMax
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func CreateEnemy(ecs *ecs.ECS, x, y float64, rng *rand.Rand) *donburi.Entry {
	order := 0
	components.Enemy.Each(ecs.World, func(*donburi.Entry) { order++ })

	enemy := archetypes.Enemy.Spawn(ecs)

	newCharacterObject(ecs, enemy, x, y, cfg.Entity.Width, cfg.Entity.Height, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:        cfg.Enemy.Speed,
		Direction:    RollDirection(rng),
		MoveTimer:    0,
		MoveInterval: RollMoveInterval(rng),
		Order:        order,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(cfg.Enemy.Frames, cfg.Animation.Speed),
	})

	return enemy
}

// CreateEnemies spawns one enemy per configured spawn point, in order.
func CreateEnemies(ecs *ecs.ECS, rng *rand.Rand) []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, len(cfg.Enemy.Spawns))
	for _, sp := range cfg.Enemy.Spawns {
		enemies = append(enemies, CreateEnemy(ecs, sp.X, sp.Y, rng))
	}
	return enemies
}
