package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Speed     float64
	Direction math.Vec2 // unit vector, or zero when standing still
	MoveTimer int

	// MoveInterval is the number of ticks before the next direction reroll.
	MoveInterval int

	// Order is the spawn position within the world's enemies.
	Order int
}

var Enemy = donburi.NewComponentType[EnemyData]()
