package systems

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt = 0.02

// scriptedInput replays inputs by tick; ticks past the end are neutral.
type scriptedInput struct {
	tick   int
	inputs map[int]ability.Input
}

func (s *scriptedInput) Sample() (ability.Input, error) {
	in := s.inputs[s.tick]
	s.tick++
	return in, nil
}

// newTestECS builds a 20x10 resolv world with a floor along y 0..1 and a
// character standing on it at x = 3.
func newTestECS(t *testing.T, source components.InputSampler) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Apply(cfg.Defaults())

	physics, err := factory.NewPhysics(20, 10)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	Register(e)
	factory.CreateWorld(e, physics, dt)
	factory.CreateSolid(e, collision.Rect{X: 0, Y: 0, W: 20, H: 1})
	character := factory.CreateCharacter(e, "tester", 3, 1.5, source)
	return e, character
}

func TestAttacksDestroyTarget(t *testing.T) {
	press := ability.Input{AttackPressed: true}
	source := &scriptedInput{inputs: map[int]ability.Input{0: press, 30: press, 60: press}}
	e, character := newTestECS(t, source)
	target := factory.CreateTarget(e, "dummy", collision.Rect{X: 4.5, Y: 1, W: 1, H: 1}, 0)

	var hits, destroyed int
	for i := 0; i < 61; i++ {
		e.Update()
		out := components.Ability.Get(character).Output
		for _, ev := range out.Events {
			switch ev {
			case ability.EventTargetHit:
				hits++
			case ability.EventTargetDestroyed:
				destroyed++
			}
		}
		if i == 30 {
			assert.Equal(t, 10.0, components.Health.Get(target).Current)
		}
	}

	assert.Equal(t, 3, hits)
	assert.Equal(t, 1, destroyed)
	assert.False(t, e.World.Valid(target.Entity()))

	// The physics world forgot it too.
	w, ok := worldData(e)
	require.True(t, ok)
	assert.Empty(t, w.Physics.Overlap(collision.Rect{X: 4.5, Y: 1, W: 1, H: 1}.Center(), 1, "target"))
}

func TestAttackOutOfRangeMisses(t *testing.T) {
	source := &scriptedInput{inputs: map[int]ability.Input{0: {AttackPressed: true}}}
	e, character := newTestECS(t, source)
	target := factory.CreateTarget(e, "far", collision.Rect{X: 12, Y: 1, W: 1, H: 1}, 0)

	e.Update()

	assert.Empty(t, components.Ability.Get(character).Hits)
	assert.Equal(t, cfg.Target.MaxHealth, components.Health.Get(target).Current)
}

func TestDashDisablesGravity(t *testing.T) {
	source := &scriptedInput{inputs: map[int]ability.Input{1: {DashPressed: true}}}
	e, character := newTestECS(t, source)
	body := components.Body.Get(character)

	e.Update()
	assert.Equal(t, cfg.Ability.GravityScale, body.GravityScale())

	e.Update()
	assert.Equal(t, 0.0, body.GravityScale())
	snap := components.Presentation.Get(character)
	assert.True(t, snap.Dashing)
	assert.InDelta(t, cfg.Ability.DashSpeed/(1+dt*cfg.Ability.AirDrag), snap.HorizontalSpeed, 1e-9)
}

func TestPresentationFollowsMotion(t *testing.T) {
	source := components.InputFunc(func() (ability.Input, error) {
		return ability.Input{Axis: -1}, nil
	})
	e, character := newTestECS(t, source)

	for i := 0; i < 10; i++ {
		e.Update()
	}

	snap := components.Presentation.Get(character)
	assert.True(t, snap.Grounded)
	assert.Equal(t, ability.FacingLeft, snap.Facing)
	assert.Greater(t, snap.HorizontalSpeed, 0.0)
	assert.Less(t, components.Body.Get(character).Position().X, 3.0)
	w, ok := worldData(e)
	require.True(t, ok)
	assert.Equal(t, 10, w.Tick)
}

func TestInputErrorGivesNeutralInput(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	source := components.InputFunc(func() (ability.Input, error) {
		calls++
		if calls > 1 {
			return ability.Input{}, boom
		}
		return ability.Input{Axis: 1}, nil
	})
	e, character := newTestECS(t, source)

	e.Update()
	assert.Equal(t, 1.0, components.Input.Get(character).Current.Axis)

	e.Update()
	input := components.Input.Get(character)
	assert.ErrorIs(t, input.Err, boom)
	assert.Equal(t, ability.Input{}, input.Current)
}

func TestSystemsWithoutWorldAreNoops(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() {
		for _, s := range Pipeline {
			s(e)
		}
	})
}
