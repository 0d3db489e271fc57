package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePresentation refreshes each character's snapshot from its ability
// state and post-integration velocity.
func UpdatePresentation(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		ab := components.Ability.Get(e)
		body := components.Body.Get(e)
		components.Presentation.SetValue(e, ability.NewSnapshot(ab.Machine.State(), body.Velocity()))
	})
}
