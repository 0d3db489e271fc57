// Package collision provides the physics worlds the ability core runs
// against: contact probes, circle overlap queries and motion integration of
// character bodies. Coordinates are world units with Y pointing up.
package collision

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Tags shared by both backends
const (
	TagGround    = "ground"
	TagCharacter = "character"
)

// Rect is an axis-aligned box given by its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a box of size w x h centered on c.
func RectAround(c math2.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Center() math2.Vec2 {
	return math2.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Body is a character body driven by velocity commands. Gravity scale and
// air drag are applied by the world on every Step.
type Body interface {
	Position() math2.Vec2
	Velocity() math2.Vec2
	SetVelocity(vx, vy float64)
	SetGravityScale(scale float64)
	GravityScale() float64
}

// World is a physics backend.
type World interface {
	AddSolid(r Rect)
	AddCharacter(r Rect, gravityScale, drag float64) Body
	// AddTarget registers an overlap-only box. data must be comparable; it
	// is what Overlap returns and the key for RemoveTarget.
	AddTarget(r Rect, class string, data any)
	RemoveTarget(data any)

	Step(dt float64)

	GroundOverlap(center math2.Vec2, radius float64) bool
	GroundRay(origin math2.Vec2, distance float64) bool
	WallRay(origin math2.Vec2, direction, distance float64) bool
	Overlap(center math2.Vec2, radius float64, class string) []any
}

// circleHitsRect reports whether a circle touches the box.
func circleHitsRect(c math2.Vec2, radius float64, x, y, w, h float64) bool {
	nx := math.Max(x, math.Min(c.X, x+w))
	ny := math.Max(y, math.Min(c.Y, y+h))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= radius*radius
}

// spansOverlap reports whether [a, a+al] and [b, b+bl] share more than a
// touching edge.
func spansOverlap(a, al, b, bl float64) bool {
	const eps = 1e-6
	return a+eps < b+bl && b+eps < a+al
}

// segmentSpan orders a ray along one axis.
func segmentSpan(origin, direction, distance float64) (lo, hi float64) {
	end := origin + direction*distance
	return math.Min(origin, end), math.Max(origin, end)
}
