package components

import (
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its body in the physics world.
type BodyData struct {
	collision.Body
}

var Body = donburi.NewComponentType[BodyData]()

// SensorData probes contact for a character each tick.
type SensorData struct {
	Sensor  ability.Sensor
	Contact ability.Contact
}

var Sensor = donburi.NewComponentType[SensorData]()
