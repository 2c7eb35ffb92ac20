package factory

import (
	"github.com/automoto/forest-adventure/archetypes"
	"github.com/automoto/forest-adventure/assets/animations"
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHero(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)

	newCharacterObject(ecs, hero, x, y, cfg.Entity.Width, cfg.Entity.Height, tags.ResolvHero)

	components.Hero.SetValue(hero, components.HeroData{
		Speed:          cfg.Hero.Speed,
		InvulnFrames:   0,
		InvulnDuration: cfg.Hero.InvulnFrames,
	})
	components.Health.SetValue(hero, components.HealthData{
		Current: cfg.Hero.Health,
	})
	components.Animation.SetValue(hero, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(cfg.Hero.Frames, cfg.Animation.Speed),
	})

	return hero
}
