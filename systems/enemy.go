package systems

import (
	"math/rand/v2"

	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/gamemath"
	"github.com/automoto/forest-adventure/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateEnemies returns the enemy wander system. Direction rerolls and
// intervals are drawn from rng.
func NewUpdateEnemies(rng *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		components.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
			UpdateEnemy(enemyEntry, rng)
		})
	}
}

func UpdateEnemy(enemyEntry *donburi.Entry, rng *rand.Rand) {
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)

	enemy.MoveTimer++
	if enemy.MoveTimer >= enemy.MoveInterval {
		enemy.Direction = factory.RollDirection(rng)
		enemy.MoveInterval = factory.RollMoveInterval(rng)
		enemy.MoveTimer = 0
		// A new heading starts the walk cycle over.
		if anim := components.Animation.Get(enemyEntry); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Restart()
		}
	}

	step := gamemath.Scale(enemy.Direction, enemy.Speed)
	x, y, edges := gamemath.ClampToArena(obj.X+step.X, obj.Y+step.Y, obj.W, obj.H,
		float64(cfg.C.Width), float64(cfg.C.Height))
	obj.MoveTo(x, y)

	bounce(enemy, edges)
}

// bounce turns the enemy around when its step ended on a wall.
func bounce(enemy *components.EnemyData, edges gamemath.Edges) {
	switch cfg.Enemy.Bounce {
	case cfg.BounceReverse:
		if edges.Horizontal() || edges.Vertical() {
			enemy.Direction = gamemath.Scale(enemy.Direction, -1)
		}
	case cfg.BounceReflect:
		if edges.Horizontal() {
			enemy.Direction.X = -enemy.Direction.X
		}
		if edges.Vertical() {
			enemy.Direction.Y = -enemy.Direction.Y
		}
	}
}
