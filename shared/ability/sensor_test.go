package ability

import (
	"testing"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

type probeCall struct {
	kind      string
	at        math2.Vec2
	direction float64
	size      float64
}

type fakeProber struct {
	calls                     []probeCall
	overlap, ray, left, right bool
}

func (f *fakeProber) GroundOverlap(center math2.Vec2, radius float64) bool {
	f.calls = append(f.calls, probeCall{kind: "overlap", at: center, size: radius})
	return f.overlap
}

func (f *fakeProber) GroundRay(origin math2.Vec2, distance float64) bool {
	f.calls = append(f.calls, probeCall{kind: "ray", at: origin, size: distance})
	return f.ray
}

func (f *fakeProber) WallRay(origin math2.Vec2, direction, distance float64) bool {
	f.calls = append(f.calls, probeCall{kind: "wall", at: origin, direction: direction, size: distance})
	if direction < 0 {
		return f.left
	}
	return f.right
}

func TestSensorUsesConfiguredProbes(t *testing.T) {
	p := &fakeProber{overlap: true, right: true}
	s := NewSensor(p, cfg.Defaults().Sensor)

	c := s.Sense(math2.Vec2{X: 10, Y: 5})
	assert.Equal(t, Contact{Grounded: true, WallRight: true}, c)
	assert.Equal(t, []probeCall{
		{kind: "overlap", at: math2.Vec2{X: 10, Y: 4.5}, size: 0.3},
		{kind: "wall", at: math2.Vec2{X: 9.6, Y: 5}, direction: -1, size: 0.6},
		{kind: "wall", at: math2.Vec2{X: 10.4, Y: 5}, direction: 1, size: 0.6},
	}, p.calls)
}

func TestSensorFallsBackToGroundRay(t *testing.T) {
	p := &fakeProber{overlap: true, ray: false}
	c := cfg.Defaults().Sensor
	c.GroundCheck = nil
	s := NewSensor(p, c)

	contact := s.Sense(math2.Vec2{X: 1, Y: 2})
	assert.False(t, contact.Grounded)
	assert.Equal(t, probeCall{kind: "ray", at: math2.Vec2{X: 1, Y: 2}, size: 0.3}, p.calls[0])
}

func TestSensorWithoutBothWallChecks(t *testing.T) {
	p := &fakeProber{left: true, right: true}
	c := cfg.Defaults().Sensor
	c.WallCheckRight = nil
	s := NewSensor(p, c)

	contact := s.Sense(math2.Vec2{})
	assert.False(t, contact.TouchingWall())
	assert.Len(t, p.calls, 1, "only the ground probe runs")
}
