package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	math2 "github.com/yohamta/donburi/features/math"
)

// Shape categories
const (
	categoryGround uint = 1 << iota
	categoryCharacter
	categoryTarget
)

// flushSlop is how far, in world units, a body may already overlap ground
// and still be treated as touching it.
const flushSlop = 1e-6

// ChipmunkWorld is a rigid-body backend on a chipmunk space. Characters are
// unit-mass boxes that cannot rotate; ground and targets hang off the static
// body. Targets never collide with characters and only answer queries.
//
// chipmunk integrates positions before it looks for contacts, so a velocity
// command into a wall would sink the box a little further on every step.
// Step clips each character's move against ground first; the solver only
// ever sees touching contacts.
type ChipmunkWorld struct {
	space   *cp.Space
	bodies  []*chipmunkBody
	targets map[any]*cp.Shape
}

var _ World = (*ChipmunkWorld)(nil)

func NewChipmunkWorld(gravity float64, iterations int) *ChipmunkWorld {
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &ChipmunkWorld{
		space:   space,
		targets: make(map[any]*cp.Shape),
	}
}

// Space exposes the underlying chipmunk space.
func (w *ChipmunkWorld) Space() *cp.Space {
	return w.space
}

func bb(r Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

func filter(categories, mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categories, Mask: mask}
}

func (w *ChipmunkWorld) AddSolid(r Rect) {
	shape := cp.NewBox2(w.space.StaticBody, bb(r), 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(filter(categoryGround, cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
}

func (w *ChipmunkWorld) AddCharacter(r Rect, gravityScale, drag float64) Body {
	b := &chipmunkBody{gravityScale: gravityScale, hw: r.W / 2, hh: r.H / 2}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2})
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
		v := body.Velocity().Mult(1 / (1 + dt*drag))
		body.SetVelocityVector(v)
	})
	b.body = body

	shape := cp.NewBox(body, r.W, r.H, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(filter(categoryCharacter, categoryGround))
	shape.UserData = b

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *ChipmunkWorld) AddTarget(r Rect, class string, data any) {
	shape := cp.NewBox2(w.space.StaticBody, bb(r), 0)
	shape.SetFilter(filter(categoryTarget, categoryTarget))
	shape.UserData = target{class: class, data: data}
	w.space.AddShape(shape)
	w.targets[data] = shape
}

func (w *ChipmunkWorld) RemoveTarget(data any) {
	shape, ok := w.targets[data]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.targets, data)
}

// Step clips every character's move against ground, then runs the solver
// for gravity, drag and resting contacts. A blocked axis ends the step at
// rest.
func (w *ChipmunkWorld) Step(dt float64) {
	for _, b := range w.bodies {
		b.blockedX, b.blockedY = w.clip(b, dt)
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		if !b.blockedX && !b.blockedY {
			continue
		}
		v := b.body.Velocity()
		if b.blockedX {
			v.X = 0
		}
		if b.blockedY {
			v.Y = 0
		}
		b.body.SetVelocityVector(v)
	}
}

// clip shortens the body's velocity so this step ends flush against ground,
// horizontal axis first.
func (w *ChipmunkWorld) clip(b *chipmunkBody, dt float64) (bool, bool) {
	v := b.body.Velocity()
	box := b.bb()

	dx, blockedX := w.sweep(box, v.X*dt, true)
	if blockedX {
		v.X = dx / dt
	}
	box.L += dx
	box.R += dx

	dy, blockedY := w.sweep(box, v.Y*dt, false)
	if blockedY {
		v.Y = dy / dt
	}

	if blockedX || blockedY {
		b.body.SetVelocityVector(v)
	}
	return blockedX, blockedY
}

// sweep shortens a move of d along one axis so box stops flush against
// ground.
func (w *ChipmunkWorld) sweep(box cp.BB, d float64, horizontal bool) (float64, bool) {
	if d == 0 {
		return 0, false
	}
	lo, hi, across, acrossLen := box.L, box.R, box.B, box.T-box.B
	query := box
	if horizontal {
		query.L, query.R = math.Min(lo, lo+d), math.Max(hi, hi+d)
	} else {
		lo, hi, across, acrossLen = box.B, box.T, box.L, box.R-box.L
		query.B, query.T = math.Min(lo, lo+d), math.Max(hi, hi+d)
	}

	blocked := false
	w.space.BBQuery(query, filter(cp.ALL_CATEGORIES, categoryGround), func(shape *cp.Shape, _ interface{}) {
		sb := shape.BB()
		near, far, a, al := sb.L, sb.R, sb.B, sb.T-sb.B
		if !horizontal {
			near, far, a, al = sb.B, sb.T, sb.L, sb.R-sb.L
		}
		if !spansOverlap(across, acrossLen, a, al) {
			return
		}
		gap := near - hi
		if d < 0 {
			gap = far - lo
		}
		if gap*d < 0 && math.Abs(gap) > flushSlop {
			return
		}
		if math.Abs(gap) <= math.Abs(d) {
			d = gap
			blocked = true
		}
	}, nil)
	return d, blocked
}

func vec(v math2.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func (w *ChipmunkWorld) GroundOverlap(center math2.Vec2, radius float64) bool {
	info := w.space.PointQueryNearest(vec(center), radius, filter(cp.ALL_CATEGORIES, categoryGround))
	return info != nil && info.Shape != nil
}

func (w *ChipmunkWorld) GroundRay(origin math2.Vec2, distance float64) bool {
	end := math2.Vec2{X: origin.X, Y: origin.Y - distance}
	return w.segment(origin, end)
}

func (w *ChipmunkWorld) WallRay(origin math2.Vec2, direction, distance float64) bool {
	end := math2.Vec2{X: origin.X + direction*distance, Y: origin.Y}
	return w.segment(origin, end)
}

// segment reports whether a ray hits ground. A ray starting inside ground
// counts as a hit.
func (w *ChipmunkWorld) segment(a, b math2.Vec2) bool {
	f := filter(cp.ALL_CATEGORIES, categoryGround)
	if w.space.SegmentQueryFirst(vec(a), vec(b), 0, f).Shape != nil {
		return true
	}
	info := w.space.PointQueryNearest(vec(a), 0, f)
	return info != nil && info.Shape != nil
}

func (w *ChipmunkWorld) Overlap(center math2.Vec2, radius float64, class string) []any {
	c := vec(center)
	var found []any
	w.space.BBQuery(cp.NewBBForCircle(c, radius), filter(cp.ALL_CATEGORIES, categoryTarget),
		func(shape *cp.Shape, _ interface{}) {
			t, ok := shape.UserData.(target)
			if !ok || t.class != class {
				return
			}
			if shape.PointQuery(c).Distance <= radius {
				found = append(found, t.data)
			}
		}, nil)
	return found
}

type target struct {
	class string
	data  any
}

type chipmunkBody struct {
	body         *cp.Body
	gravityScale float64
	hw, hh       float64

	blockedX, blockedY bool
}

func (b *chipmunkBody) bb() cp.BB {
	return cp.NewBBForExtents(b.body.Position(), b.hw, b.hh)
}

func (b *chipmunkBody) Position() math2.Vec2 {
	p := b.body.Position()
	return math2.Vec2{X: p.X, Y: p.Y}
}

func (b *chipmunkBody) Velocity() math2.Vec2 {
	v := b.body.Velocity()
	return math2.Vec2{X: v.X, Y: v.Y}
}

func (b *chipmunkBody) SetVelocity(vx, vy float64) {
	b.body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
}

func (b *chipmunkBody) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

func (b *chipmunkBody) GravityScale() float64 {
	return b.gravityScale
}
