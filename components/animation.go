package components

import (
	"github.com/automoto/forest-adventure/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
