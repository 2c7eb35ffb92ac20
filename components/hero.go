package components

import "github.com/yohamta/donburi"

type HeroData struct {
	Speed float64

	// InvulnFrames counts down the ticks of damage immunity left.
	InvulnFrames   int
	InvulnDuration int
}

var Hero = donburi.NewComponentType[HeroData]()
