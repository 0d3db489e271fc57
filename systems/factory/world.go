package factory

import (
	"fmt"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPhysics builds the backend named by cfg.Physics for a world of
// width x height units.
func NewPhysics(width, height float64) (collision.World, error) {
	p := cfg.Physics
	switch p.Backend {
	case cfg.BackendResolv:
		return collision.NewResolvWorld(width, height, p.PixelsPerUnit, p.CellSize, p.Gravity), nil
	case cfg.BackendChipmunk:
		return collision.NewChipmunkWorld(p.Gravity, p.Iterations), nil
	}
	return nil, fmt.Errorf("unknown physics backend %q", p.Backend)
}

// CreateWorld spawns the singleton holding the physics world.
func CreateWorld(ecs *ecs.ECS, physics collision.World, dt float64) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		Physics: physics,
		Dt:      dt,
	})
	return world
}

func physicsWorld(ecs *ecs.ECS) collision.World {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		panic("factory: no world entity, call CreateWorld first")
	}
	return components.World.Get(entry).Physics
}
