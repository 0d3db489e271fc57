package systems

import "github.com/yohamta/donburi/ecs"

// Pipeline is the per-tick system order. Contacts are sensed at the
// positions left by the previous integration step.
var Pipeline = []ecs.System{
	UpdateInput,
	UpdateContacts,
	UpdateAbilities,
	UpdateCombat,
	UpdateMotion,
	UpdatePresentation,
}

// Register adds the pipeline to e in order.
func Register(e *ecs.ECS) {
	for _, s := range Pipeline {
		e.AddSystem(s)
	}
}
