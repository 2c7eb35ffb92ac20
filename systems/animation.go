package systems

import (
	"github.com/automoto/forest-adventure/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every entity's animation by one tick.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if anim := components.Animation.Get(entry); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
