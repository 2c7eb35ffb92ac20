package systems

import (
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateHero(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	components.Hero.Each(e.World, func(heroEntry *donburi.Entry) {
		dx, dy := directionFromInput(input)
		MoveHero(heroEntry, dx, dy)

		// Decrement invulnerability timer
		hero := components.Hero.Get(heroEntry)
		if hero.InvulnFrames > 0 {
			hero.InvulnFrames--
		}
	})
}

func directionFromInput(input *components.InputData) (dx, dy float64) {
	if ActionPressed(input, cfg.ActionMoveLeft) {
		dx--
	}
	if ActionPressed(input, cfg.ActionMoveRight) {
		dx++
	}
	if ActionPressed(input, cfg.ActionMoveUp) {
		dy--
	}
	if ActionPressed(input, cfg.ActionMoveDown) {
		dy++
	}
	return dx, dy
}

// MoveHero moves the hero one step along (dx, dy) at its speed and keeps it
// inside the arena. Diagonals are normalized so they are not faster.
func MoveHero(heroEntry *donburi.Entry, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	hero := components.Hero.Get(heroEntry)
	obj := components.Object.Get(heroEntry)
	step := gamemath.Scale(gamemath.Normalize(math.Vec2{X: dx, Y: dy}), hero.Speed)

	x, y, _ := gamemath.ClampToArena(obj.X+step.X, obj.Y+step.Y, obj.W, obj.H,
		float64(cfg.C.Width), float64(cfg.C.Height))
	obj.MoveTo(x, y)
}

// DamageHero applies amount to the hero unless it is invulnerable.
// It reports whether the damage was applied.
func DamageHero(world donburi.World, heroEntry *donburi.Entry, amount int) bool {
	hero := components.Hero.Get(heroEntry)
	if hero.InvulnFrames > 0 {
		return false
	}

	health := components.Health.Get(heroEntry)
	health.Current -= amount
	hero.InvulnFrames = hero.InvulnDuration

	HeroDamagedEvent.Publish(world, HeroDamaged{
		Hero:      heroEntry,
		Amount:    amount,
		Remaining: health.Current,
	})
	if health.Current <= 0 {
		HeroDefeatedEvent.Publish(world, HeroDefeated{Hero: heroEntry})
	}
	return true
}
