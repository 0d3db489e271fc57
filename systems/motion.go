package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion integrates the physics world by one tick.
func UpdateMotion(ecs *ecs.ECS) {
	w, ok := worldData(ecs)
	if !ok {
		return
	}
	w.Physics.Step(w.Dt)
	w.Tick++
}
