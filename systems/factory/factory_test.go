package factory

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func withBackend(t *testing.T, backend string) {
	t.Helper()
	tuning := cfg.Defaults()
	tuning.Physics.Backend = backend
	cfg.Apply(tuning)
	t.Cleanup(func() { cfg.Apply(cfg.Defaults()) })
}

func TestNewPhysics(t *testing.T) {
	withBackend(t, cfg.BackendResolv)
	w, err := NewPhysics(10, 10)
	require.NoError(t, err)
	assert.IsType(t, &collision.ResolvWorld{}, w)

	withBackend(t, cfg.BackendChipmunk)
	w, err = NewPhysics(10, 10)
	require.NoError(t, err)
	assert.IsType(t, &collision.ChipmunkWorld{}, w)

	withBackend(t, "box2d")
	_, err = NewPhysics(10, 10)
	assert.Error(t, err)
}

func newECS(t *testing.T) *ecs.ECS {
	t.Helper()
	withBackend(t, cfg.BackendResolv)
	physics, err := NewPhysics(20, 10)
	require.NoError(t, err)
	e := ecs.NewECS(donburi.NewWorld())
	CreateWorld(e, physics, 0.02)
	return e
}

func TestCreateCharacter(t *testing.T) {
	e := newECS(t)
	entry := CreateCharacter(e, "hero", 3, 2.5, nil)

	assert.True(t, entry.HasComponent(tags.Character))
	assert.Equal(t, "hero", components.Character.Get(entry).Name)

	body := components.Body.Get(entry)
	assert.InDelta(t, 3, body.Position().X, 1e-9)
	assert.InDelta(t, 2.5, body.Position().Y, 1e-9)
	assert.Equal(t, cfg.Ability.GravityScale, body.GravityScale())

	machine := components.Ability.Get(entry).Machine
	require.NotNil(t, machine)
	assert.Equal(t, cfg.Ability, machine.Config())
	assert.Equal(t, 1, machine.State().MaxJumps)

	snap := components.Presentation.Get(entry)
	assert.Equal(t, ability.FacingRight, snap.Facing)
	assert.True(t, snap.CanDash)
}

func TestCharacterKeepsSpawnTuning(t *testing.T) {
	e := newECS(t)
	entry := CreateCharacter(e, "hero", 3, 2.5, nil)

	tuning := cfg.Current()
	tuning.Ability.DoubleJumpEnabled = true
	tuning.Ability.MoveSpeed = 1
	cfg.Apply(tuning)

	machine := components.Ability.Get(entry).Machine
	assert.Equal(t, 6.0, machine.Config().MoveSpeed)
	assert.Equal(t, 1, machine.State().MaxJumps)

	later := CreateCharacter(e, "late", 5, 2.5, nil)
	assert.Equal(t, 2, components.Ability.Get(later).Machine.State().MaxJumps)
}

func TestCreateTarget(t *testing.T) {
	e := newECS(t)
	box := collision.Rect{X: 4, Y: 1, W: 1, H: 1}

	dflt := CreateTarget(e, "a", box, 0)
	assert.Equal(t, cfg.Target.MaxHealth, components.Health.Get(dflt).Max)
	assert.Equal(t, "a", components.Target.Get(dflt).Name)

	tough := CreateTarget(e, "b", collision.Rect{X: 8, Y: 1, W: 1, H: 1}, 50)
	assert.Equal(t, 50.0, components.Health.Get(tough).Current)

	entry, ok := components.World.First(e.World)
	require.True(t, ok)
	found := components.World.Get(entry).Physics.Overlap(box.Center(), 0.1, tags.ResolvTarget)
	assert.Equal(t, []any{dflt.Entity()}, found)
}

func TestCreateCharacterNeedsWorld(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Panics(t, func() { CreateCharacter(e, "hero", 0, 0, nil) })
}
