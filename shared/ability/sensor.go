package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// Prober answers contact queries against ground-classified geometry.
type Prober interface {
	// GroundOverlap reports ground inside the circle.
	GroundOverlap(center math2.Vec2, radius float64) bool
	// GroundRay casts straight down from origin.
	GroundRay(origin math2.Vec2, distance float64) bool
	// WallRay casts horizontally; direction is -1 for left, 1 for right.
	WallRay(origin math2.Vec2, direction, distance float64) bool
}

// Sensor probes ground and wall contact around a character.
type Sensor struct {
	prober Prober
	cfg    cfg.SensorConfig
}

func NewSensor(p Prober, c cfg.SensorConfig) Sensor {
	return Sensor{prober: p, cfg: c}
}

// Sense runs the probes for a character at pos. Without a ground check the
// ground probe is a downward ray of the check radius; without both wall
// checks wall contact is always false.
func (s Sensor) Sense(pos math2.Vec2) Contact {
	var c Contact

	if g := s.cfg.GroundCheck; g != nil {
		c.Grounded = s.prober.GroundOverlap(offset(pos, g), s.cfg.GroundCheckRadius)
	} else {
		c.Grounded = s.prober.GroundRay(pos, s.cfg.GroundCheckRadius)
	}

	left, right := s.cfg.WallCheckLeft, s.cfg.WallCheckRight
	if left == nil || right == nil {
		return c
	}
	c.WallLeft = s.prober.WallRay(offset(pos, left), cfg.DirectionLeft, s.cfg.WallCheckDistance)
	c.WallRight = s.prober.WallRay(offset(pos, right), cfg.DirectionRight, s.cfg.WallCheckDistance)
	return c
}

func offset(pos math2.Vec2, o *cfg.Offset) math2.Vec2 {
	return math2.Vec2{X: pos.X + o.X, Y: pos.Y + o.Y}
}
