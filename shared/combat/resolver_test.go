package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

type placed struct {
	target *Target
	pos    math2.Vec2
}

// fakeWorld reports targets whose position lies inside the circle. Each
// target may be listed more than once, like a body with several colliders.
type fakeWorld struct {
	placed []placed
}

func (w *fakeWorld) add(name string, x, y float64) *Target {
	t := NewTarget(name, 30)
	t.OnDestroyed = w.remove
	w.placed = append(w.placed, placed{target: t, pos: math2.Vec2{X: x, Y: y}})
	return t
}

func (w *fakeWorld) remove(t *Target) {
	kept := w.placed[:0]
	for _, p := range w.placed {
		if p.target != t {
			kept = append(kept, p)
		}
	}
	w.placed = kept
}

func (w *fakeWorld) QueryOverlap(center math2.Vec2, radius float64) []Damageable {
	var out []Damageable
	for _, p := range w.placed {
		if math.Hypot(p.pos.X-center.X, p.pos.Y-center.Y) <= radius {
			out = append(out, p.target)
		}
	}
	return out
}

func TestResolveAttackScenario(t *testing.T) {
	w := &fakeWorld{}
	enemy := w.add("enemy", 3, 0)
	r := NewResolver(w)
	v := Volume{Center: math2.Vec2{X: 1.5}, Radius: 1.5}

	hits := r.Resolve(v, 10)
	require.Len(t, hits, 1)
	assert.False(t, hits[0].Destroyed)
	assert.Equal(t, 20.0, enemy.Health.Current)
	assert.Len(t, w.QueryOverlap(v.Center, v.Radius), 1, "still present")

	r.Resolve(v, 10)
	hits = r.Resolve(v, 10)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Destroyed)
	assert.Equal(t, 0.0, enemy.Health.Current)
	assert.True(t, enemy.Destroyed())
	assert.Empty(t, w.QueryOverlap(v.Center, v.Radius))

	assert.Empty(t, r.Resolve(v, 10))
}

func TestResolveHitsEachTargetOnce(t *testing.T) {
	w := &fakeWorld{}
	a := w.add("a", 0, 0)
	b := w.add("b", 0.5, 0)
	w.placed = append(w.placed, placed{target: a, pos: math2.Vec2{X: 0.2}})
	far := w.add("far", 10, 0)

	hits := NewResolver(w).Resolve(Volume{Radius: 1}, 10)
	assert.Len(t, hits, 2)
	assert.Equal(t, 20.0, a.Health.Current)
	assert.Equal(t, 20.0, b.Health.Current)
	assert.Equal(t, 30.0, far.Health.Current)
}

func TestResolveSkipsDestroyedTargets(t *testing.T) {
	w := &fakeWorld{}
	ghost := NewTarget("ghost", 5)
	require.True(t, ghost.TakeDamage(5))
	w.placed = append(w.placed, placed{target: ghost})

	assert.Empty(t, NewResolver(w).Resolve(Volume{Radius: 1}, 10))
}

func TestHealthDepletesOnce(t *testing.T) {
	h := NewHealth(30)
	assert.False(t, h.Apply(10))
	assert.False(t, h.Apply(10))
	assert.True(t, h.Apply(15))
	assert.Equal(t, 0.0, h.Current)
	assert.True(t, h.Depleted())
	assert.False(t, h.Apply(10), "no damage after depletion")
	assert.Equal(t, 0.0, h.Current)
}

func TestTargetCallbackRunsOnce(t *testing.T) {
	calls := 0
	target := NewTarget("dummy", 10)
	target.OnDestroyed = func(*Target) { calls++ }

	target.TakeDamage(10)
	target.TakeDamage(10)
	assert.Equal(t, 1, calls)
}
