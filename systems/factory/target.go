package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/automoto/doomerang-abilities/shared/combat"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget spawns a damageable target occupying box. A maxHealth of
// zero uses cfg.Target.MaxHealth.
func CreateTarget(ecs *ecs.ECS, name string, box collision.Rect, maxHealth float64) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	if maxHealth <= 0 {
		maxHealth = cfg.Target.MaxHealth
	}

	components.Target.SetValue(target, components.TargetData{Name: name, Box: box})
	components.Health.SetValue(target, combat.NewHealth(maxHealth))

	physicsWorld(ecs).AddTarget(box, tags.ResolvTarget, target.Entity())
	return target
}

// CreateSolid adds static ground geometry.
func CreateSolid(ecs *ecs.ECS, box collision.Rect) {
	physicsWorld(ecs).AddSolid(box)
}
