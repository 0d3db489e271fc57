package collision

import (
	"math"

	"github.com/solarlune/resolv"
	math2 "github.com/yohamta/donburi/features/math"
)

// contactSlop is how far, in pixels, a body may already overlap geometry
// and still be treated as touching it.
const contactSlop = 1e-6

// ResolvWorld is a kinematic backend on a resolv grid space. Bodies move
// one axis at a time and stop flush against ground geometry.
//
// resolv buckets objects by whole pixels, so the space works in pixels and
// every call converts from world units with the pixels-per-unit factor.
type ResolvWorld struct {
	space   *resolv.Space
	ppu     float64
	gravity float64
	bodies  []*resolvBody
	targets map[any]*resolv.Object
}

var _ World = (*ResolvWorld)(nil)

// NewResolvWorld creates a world covering width x height units. Geometry
// outside that area is invisible to queries.
func NewResolvWorld(width, height, pixelsPerUnit float64, cellSize int, gravity float64) *ResolvWorld {
	return &ResolvWorld{
		space:   resolv.NewSpace(int(math.Ceil(width*pixelsPerUnit)), int(math.Ceil(height*pixelsPerUnit)), cellSize, cellSize),
		ppu:     pixelsPerUnit,
		gravity: gravity,
		targets: make(map[any]*resolv.Object),
	}
}

// Space exposes the underlying resolv space.
func (w *ResolvWorld) Space() *resolv.Space {
	return w.space
}

func (w *ResolvWorld) newObject(r Rect, tags ...string) *resolv.Object {
	x, y, width, height := r.X*w.ppu, r.Y*w.ppu, r.W*w.ppu, r.H*w.ppu
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	return obj
}

func (w *ResolvWorld) AddSolid(r Rect) {
	w.space.Add(w.newObject(r, TagGround))
}

func (w *ResolvWorld) AddCharacter(r Rect, gravityScale, drag float64) Body {
	obj := w.newObject(r, TagCharacter)
	w.space.Add(obj)

	b := &resolvBody{obj: obj, ppu: w.ppu, gravityScale: gravityScale, drag: drag}
	obj.Data = b
	w.bodies = append(w.bodies, b)
	return b
}

func (w *ResolvWorld) AddTarget(r Rect, class string, data any) {
	obj := w.newObject(r, class)
	obj.Data = data
	w.space.Add(obj)
	w.targets[data] = obj
}

func (w *ResolvWorld) RemoveTarget(data any) {
	obj, ok := w.targets[data]
	if !ok {
		return
	}
	w.space.Remove(obj)
	delete(w.targets, data)
}

// Step integrates gravity and drag, then moves every body.
func (w *ResolvWorld) Step(dt float64) {
	for _, b := range w.bodies {
		b.vy += w.gravity * b.gravityScale * dt
		damp := 1 / (1 + dt*b.drag)
		b.vx *= damp
		b.vy *= damp

		dx, blocked := w.sweepX(b.obj, b.vx*dt*w.ppu)
		b.obj.X += dx
		b.obj.Update()
		if blocked {
			b.vx = 0
		}

		dy, blocked := w.sweepY(b.obj, b.vy*dt*w.ppu)
		b.obj.Y += dy
		b.obj.Update()
		if blocked {
			b.vy = 0
		}
	}
}

// sweepX shortens a horizontal move so obj stops flush against ground.
func (w *ResolvWorld) sweepX(obj *resolv.Object, dx float64) (float64, bool) {
	if dx == 0 {
		return 0, false
	}
	dir := dx
	left, right := obj.X, obj.X+obj.W
	lo, hi := math.Min(left, left+dx), math.Max(right, right+dx)

	blocked := false
	w.probe(lo, obj.Y, hi-lo, obj.H, TagGround, func(o *resolv.Object) bool {
		if !spansOverlap(obj.Y, obj.H, o.Y, o.H) {
			return false
		}
		gap := o.X - right
		if dir < 0 {
			gap = o.X + o.W - left
		}
		if gap*dir < 0 && math.Abs(gap) > contactSlop {
			return false
		}
		if math.Abs(gap) <= math.Abs(dx) {
			dx = gap
			blocked = true
		}
		return false
	})
	return dx, blocked
}

// sweepY shortens a vertical move so obj stops flush against ground.
func (w *ResolvWorld) sweepY(obj *resolv.Object, dy float64) (float64, bool) {
	if dy == 0 {
		return 0, false
	}
	dir := dy
	bottom, top := obj.Y, obj.Y+obj.H
	lo, hi := math.Min(bottom, bottom+dy), math.Max(top, top+dy)

	blocked := false
	w.probe(obj.X, lo, obj.W, hi-lo, TagGround, func(o *resolv.Object) bool {
		if !spansOverlap(obj.X, obj.W, o.X, o.W) {
			return false
		}
		gap := o.Y - top
		if dir < 0 {
			gap = o.Y + o.H - bottom
		}
		if gap*dir < 0 && math.Abs(gap) > contactSlop {
			return false
		}
		if math.Abs(gap) <= math.Abs(dy) {
			dy = gap
			blocked = true
		}
		return false
	})
	return dy, blocked
}

// probe calls fn for every object tagged tag near the pixel box until fn
// returns true. The box is padded by a pixel since resolv drops the last
// pixel row and column when bucketing.
func (w *ResolvWorld) probe(x, y, width, height float64, tag string, fn func(o *resolv.Object) bool) bool {
	tmp := resolv.NewObject(x-1, y-1, width+2, height+2)
	w.space.Add(tmp)
	defer w.space.Remove(tmp)

	check := tmp.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tag) {
		if fn(o) {
			return true
		}
	}
	return false
}

func (w *ResolvWorld) px(v math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: v.X * w.ppu, Y: v.Y * w.ppu}
}

func (w *ResolvWorld) GroundOverlap(center math2.Vec2, radius float64) bool {
	c, r := w.px(center), radius*w.ppu
	return w.probe(c.X-r, c.Y-r, r*2, r*2, TagGround, func(o *resolv.Object) bool {
		return circleHitsRect(c, r, o.X, o.Y, o.W, o.H)
	})
}

func (w *ResolvWorld) GroundRay(origin math2.Vec2, distance float64) bool {
	p, d := w.px(origin), distance*w.ppu
	lo := p.Y - d
	return w.probe(p.X, lo, 0, d, TagGround, func(o *resolv.Object) bool {
		return p.X >= o.X && p.X <= o.X+o.W && lo <= o.Y+o.H && p.Y >= o.Y
	})
}

func (w *ResolvWorld) WallRay(origin math2.Vec2, direction, distance float64) bool {
	p := w.px(origin)
	lo, hi := segmentSpan(p.X, direction, distance*w.ppu)
	return w.probe(lo, p.Y, hi-lo, 0, TagGround, func(o *resolv.Object) bool {
		return p.Y >= o.Y && p.Y <= o.Y+o.H && lo <= o.X+o.W && hi >= o.X
	})
}

func (w *ResolvWorld) Overlap(center math2.Vec2, radius float64, class string) []any {
	c, r := w.px(center), radius*w.ppu
	var found []any
	w.probe(c.X-r, c.Y-r, r*2, r*2, class, func(o *resolv.Object) bool {
		if circleHitsRect(c, r, o.X, o.Y, o.W, o.H) {
			found = append(found, o.Data)
		}
		return false
	})
	return found
}

type resolvBody struct {
	obj          *resolv.Object
	ppu          float64
	vx, vy       float64
	gravityScale float64
	drag         float64
}

func (b *resolvBody) Position() math2.Vec2 {
	return math2.Vec2{
		X: (b.obj.X + b.obj.W/2) / b.ppu,
		Y: (b.obj.Y + b.obj.H/2) / b.ppu,
	}
}

func (b *resolvBody) Velocity() math2.Vec2 {
	return math2.Vec2{X: b.vx, Y: b.vy}
}

func (b *resolvBody) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

func (b *resolvBody) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

func (b *resolvBody) GravityScale() float64 {
	return b.gravityScale
}
