package components

import (
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
)

// WorldData is the singleton holding the physics world and the clock.
type WorldData struct {
	Physics collision.World
	Dt      float64 // seconds per tick
	Tick    int
}

var World = donburi.NewComponentType[WorldData]()
