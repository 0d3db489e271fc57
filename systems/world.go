package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi/ecs"
)

func worldData(ecs *ecs.ECS) (*components.WorldData, bool) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.World.Get(entry), true
}
