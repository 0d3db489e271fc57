package factory

import (
	"log"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateCharacter spawns a character centered on (x, y) with the current
// global tuning. source may be nil for a character driven by setting
// InputData.Current directly.
func CreateCharacter(ecs *ecs.ECS, name string, x, y float64, source components.InputSampler) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)
	physics := physicsWorld(ecs)

	pos := math2.Vec2{X: x, Y: y}
	body := physics.AddCharacter(
		collision.RectAround(pos, cfg.Physics.CharacterWidth, cfg.Physics.CharacterHeight),
		cfg.Ability.GravityScale,
		cfg.Ability.AirDrag,
	)
	machine := ability.New(cfg.Ability, cfg.Physics.Gravity)

	components.Character.SetValue(character, components.CharacterData{Name: name})
	components.Ability.SetValue(character, components.AbilityData{Machine: machine})
	components.Input.SetValue(character, components.InputData{Source: source})
	components.Sensor.SetValue(character, components.SensorData{
		Sensor: ability.NewSensor(physics, cfg.Sensor),
	})
	components.Body.SetValue(character, components.BodyData{Body: body})
	components.Presentation.SetValue(character, ability.NewSnapshot(machine.State(), body.Velocity()))

	a := cfg.Ability
	log.Printf("factory: %s at (%.2f, %.2f) move=%g jump=%g doubleJump=%v dash=%g for %gs cooldown=%gs attack=%g range=%g",
		name, x, y, a.MoveSpeed, a.JumpForce, a.DoubleJumpEnabled, a.DashSpeed, a.DashTime, a.DashCooldown,
		a.AttackDamage, a.AttackRange)

	return character
}
