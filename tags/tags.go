package tags

import "github.com/yohamta/donburi"

var (
	Hero  = donburi.NewTag().SetName("Hero")
	Enemy = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for collision queries
const (
	ResolvHero  = "hero"
	ResolvEnemy = "enemy"
)
