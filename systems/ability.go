package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAbilities steps every ability machine and hands the commanded
// velocity and gravity scale to the body.
func UpdateAbilities(ecs *ecs.ECS) {
	w, ok := worldData(ecs)
	if !ok {
		return
	}

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		ab := components.Ability.Get(e)
		input := components.Input.Get(e)
		sensor := components.Sensor.Get(e)
		body := components.Body.Get(e)

		out := ab.Machine.Step(input.Current, sensor.Contact, ability.Body{
			Position: body.Position(),
			Velocity: body.Velocity(),
		}, w.Dt)

		body.SetVelocity(out.Velocity.X, out.Velocity.Y)
		body.SetGravityScale(out.GravityScale)

		ab.Output = out
		ab.Hits = nil
	})
}
