package systems

import (
	"log"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/automoto/doomerang-abilities/shared/combat"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateCombat applies the attacks started this tick to the targets inside
// their hit circles. Destroyed targets leave both worlds.
func UpdateCombat(ecs *ecs.ECS) {
	w, ok := worldData(ecs)
	if !ok {
		return
	}

	// Collect first; resolving removes entities.
	type pending struct {
		entry   *donburi.Entry
		trigger ability.AttackTrigger
	}
	var attacks []pending
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if t := components.Ability.Get(e).Output.Attack; t != nil {
			attacks = append(attacks, pending{entry: e, trigger: *t})
		}
	})
	if len(attacks) == 0 {
		return
	}

	resolver := combat.NewResolver(targetQuery{ecs: ecs, physics: w.Physics})
	for _, a := range attacks {
		t := a.trigger
		ab := components.Ability.Get(a.entry)
		ab.Hits = resolver.Resolve(combat.Volume{
			Center: t.Center,
			Radius: t.Radius,
		}, t.Damage)
		for _, hit := range ab.Hits {
			ab.Output.Events = append(ab.Output.Events, ability.EventTargetHit)
			if hit.Destroyed {
				ab.Output.Events = append(ab.Output.Events, ability.EventTargetDestroyed)
			}
		}
	}
}

// targetQuery finds target entities through the physics world.
type targetQuery struct {
	ecs     *ecs.ECS
	physics collision.World
}

func (q targetQuery) QueryOverlap(center math2.Vec2, radius float64) []combat.Damageable {
	found := q.physics.Overlap(center, radius, tags.ResolvTarget)
	targets := make([]combat.Damageable, 0, len(found))
	for _, data := range found {
		entity, ok := data.(donburi.Entity)
		if !ok || !q.ecs.World.Valid(entity) {
			continue
		}
		name := components.Target.Get(q.ecs.World.Entry(entity)).Name
		targets = append(targets, TargetRef{ecs: q.ecs, physics: q.physics, entity: entity, name: name})
	}
	return targets
}

// TargetRef is a target entity seen as a combat.Damageable.
type TargetRef struct {
	ecs     *ecs.ECS
	physics collision.World
	entity  donburi.Entity
	name    string
}

func (t TargetRef) Name() string {
	return t.name
}

func (t TargetRef) TakeDamage(amount float64) bool {
	hp := components.Health.Get(t.ecs.World.Entry(t.entity))
	if !hp.Apply(amount) {
		log.Printf("combat: %s hit for %g, %g/%g left", t.name, amount, hp.Current, hp.Max)
		return false
	}

	log.Printf("combat: %s destroyed", t.name)
	t.physics.RemoveTarget(t.entity)
	t.ecs.World.Remove(t.entity)
	return true
}

func (t TargetRef) Destroyed() bool {
	if !t.ecs.World.Valid(t.entity) {
		return true
	}
	return components.Health.Get(t.ecs.World.Entry(t.entity)).Depleted()
}
