// Package combat applies melee hits to damageable targets.
package combat

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Damageable is anything that can receive a hit. Implementations must be
// comparable so the resolver can hit each target once per attack.
type Damageable interface {
	// TakeDamage reduces health and reports whether this hit destroyed the
	// target.
	TakeDamage(amount float64) bool
	Destroyed() bool
}

// OverlapQuerier finds damageable targets inside a circle.
type OverlapQuerier interface {
	QueryOverlap(center math2.Vec2, radius float64) []Damageable
}

// Volume is the hit circle of one attack.
type Volume struct {
	Center math2.Vec2
	Radius float64
}

// Hit records one damaged target.
type Hit struct {
	Target    Damageable
	Destroyed bool
}

// Resolver applies attack volumes to the targets a querier reports.
type Resolver struct {
	world OverlapQuerier
}

func NewResolver(world OverlapQuerier) *Resolver {
	return &Resolver{world: world}
}

// Resolve damages every target overlapping v exactly once. Targets that are
// already destroyed are skipped.
func (r *Resolver) Resolve(v Volume, amount float64) []Hit {
	targets := r.world.QueryOverlap(v.Center, v.Radius)
	if len(targets) == 0 {
		return nil
	}

	seen := make(map[Damageable]struct{}, len(targets))
	hits := make([]Hit, 0, len(targets))
	for _, t := range targets {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if t.Destroyed() {
			continue
		}
		hits = append(hits, Hit{Target: t, Destroyed: t.TakeDamage(amount)})
	}
	return hits
}
