package archetypes

import (
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Object,
		components.Health,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
