package archetypes

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Ability,
		components.Input,
		components.Sensor,
		components.Body,
		components.Presentation,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Health,
	)
	World = newArchetype(
		components.World,
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
