package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts runs the ground and wall probes at each character's
// current position.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.Sensor.Get(e)
		body := components.Body.Get(e)
		sensor.Contact = sensor.Sensor.Sense(body.Position())
	})
}
