package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type HeroDamaged struct {
	Hero      *donburi.Entry
	Amount    int
	Remaining int
}

type HeroDefeated struct {
	Hero *donburi.Entry
}

var (
	HeroDamagedEvent  = events.NewEventType[HeroDamaged]()
	HeroDefeatedEvent = events.NewEventType[HeroDefeated]()
)
