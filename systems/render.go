package systems

import (
	"github.com/automoto/forest-adventure/components"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEntities draws the hero and then every enemy at its top-left corner
// using the sprite named by its current animation frame.
func DrawEntities(e *ecs.ECS, surface platform.Surface) {
	tags.Hero.Each(e.World, func(entry *donburi.Entry) {
		drawAnimated(entry, surface)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		drawAnimated(entry, surface)
	})
}

func drawAnimated(entry *donburi.Entry, surface platform.Surface) {
	anim := components.Animation.Get(entry)
	if anim.CurrentAnimation == nil {
		return
	}
	o := components.Object.Get(entry)
	surface.DrawSprite(anim.CurrentAnimation.FrameName(), o.X, o.Y)
}
