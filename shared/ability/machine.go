package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// secondJumpScale weakens the double jump relative to the first.
const secondJumpScale = 0.9

// Input is one tick of sampled intent.
type Input struct {
	Axis          float64 // [-1, 1]
	JumpPressed   bool
	JumpHeld      bool
	DashPressed   bool
	AttackPressed bool
}

// Body is the motion state observed from the physics world this tick.
type Body struct {
	Position math2.Vec2
	Velocity math2.Vec2
}

// AttackTrigger describes the hit circle of an attack started this tick.
type AttackTrigger struct {
	Center math2.Vec2
	Radius float64
	Damage float64
}

// Output is what one Step commands. Velocity and GravityScale are always
// set; Attack is non-nil only on the tick an attack starts.
type Output struct {
	Velocity     math2.Vec2
	GravityScale float64
	Attack       *AttackTrigger

	Jump      Outcome
	Dash      Outcome
	AttackTry Outcome
	Events    []Event
}

func (o *Output) emit(e Event) {
	o.Events = append(o.Events, e)
}

// Has reports whether e was emitted.
func (o Output) Has(e Event) bool {
	for _, ev := range o.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// Machine owns the ability state of one character.
type Machine struct {
	cfg     cfg.AbilityConfig
	gravity float64
	state   State
}

// New creates a machine for a freshly spawned character. gravity is the
// world gravity along Y used for fall shaping.
func New(c cfg.AbilityConfig, gravity float64) *Machine {
	return &Machine{
		cfg:     c,
		gravity: gravity,
		state:   newState(c.MaxJumps()),
	}
}

// State returns a copy of the current ability state.
func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Config() cfg.AbilityConfig {
	return m.cfg
}

// GravityScale is the scale the motion integrator should use right now.
func (m *Machine) GravityScale() float64 {
	if m.state.Dashing {
		return 0
	}
	return m.cfg.GravityScale
}

// Step advances the character by one fixed tick of dt seconds.
//
// Order: triggers (jump, dash, attack), then locomotion, wall-slide and fall
// shaping unless dashing, then timers, then landing and wall-reset edges
// against the previous tick's contact.
func (m *Machine) Step(in Input, contact Contact, body Body, dt float64) Output {
	s := &m.state
	s.Contact = contact
	s.AttackPulse = false

	out := Output{Velocity: body.Velocity}

	if in.JumpPressed {
		out.Jump = m.jump(&out)
	}
	if in.DashPressed {
		out.Dash = m.dash(&out)
	}
	if in.AttackPressed {
		out.AttackTry = m.attack(body.Position, &out)
	}

	if !s.Dashing {
		m.locomotion(in.Axis, &out)
		m.wallSlide(&out)
		m.shapeFall(in.JumpHeld, dt, &out)
	}

	m.advanceTimers(dt, &out)
	m.applyEdges(&out)
	s.Previous = contact

	out.GravityScale = m.GravityScale()
	return out
}

func (m *Machine) jump(out *Output) Outcome {
	s := &m.state
	switch {
	case s.TouchingWall():
		out.emit(EventJumpRejected)
		return rejected(ReasonWallPinned)
	case s.JumpCount == 0:
		out.Velocity.Y = m.cfg.JumpForce
		s.JumpCount = 1
		out.emit(EventJumped)
		return performed()
	case s.MaxJumps == 2 && s.JumpCount == 1:
		out.Velocity.Y = m.cfg.JumpForce * secondJumpScale
		s.JumpCount = 2
		out.emit(EventDoubleJumped)
		return performed()
	}
	out.emit(EventJumpRejected)
	return rejected(ReasonNoJumpsLeft)
}

func (m *Machine) dash(out *Output) Outcome {
	s := &m.state
	if !s.CanDash {
		return rejected(ReasonDashUnavailable)
	}
	s.Dashing = true
	s.CanDash = false
	s.Timers.Dash.Start(m.cfg.DashTime)
	s.Timers.DashCooldown.Start(m.cfg.DashCooldown)
	out.Velocity = math2.Vec2{X: m.cfg.DashSpeed * s.Facing.Sign(), Y: 0}
	out.emit(EventDashStarted)
	return performed()
}

func (m *Machine) attack(pos math2.Vec2, out *Output) Outcome {
	s := &m.state
	if !s.CanAttack {
		return rejected(ReasonAttackCooldown)
	}
	s.CanAttack = false
	s.AttackPulse = true
	s.Timers.AttackCooldown.Start(m.cfg.AttackCooldown)
	out.Attack = &AttackTrigger{
		Center: math2.Vec2{X: pos.X + m.cfg.AttackRange*s.Facing.Sign(), Y: pos.Y},
		Radius: m.cfg.AttackRange,
		Damage: m.cfg.AttackDamage,
	}
	out.emit(EventAttackStarted)
	return performed()
}

func (m *Machine) locomotion(axis float64, out *Output) {
	s := &m.state
	axis = gamemath.ClampSpeed(axis, 1)
	out.Velocity.X = axis * m.cfg.MoveSpeed

	switch {
	case axis > 0 && s.Facing == FacingLeft:
		s.Facing = FacingRight
		out.emit(EventFlipped)
	case axis < 0 && s.Facing == FacingRight:
		s.Facing = FacingLeft
		out.emit(EventFlipped)
	}
}

func (m *Machine) wallSlide(out *Output) {
	s := &m.state
	sliding := s.TouchingWall() && !s.Grounded && out.Velocity.Y < 0
	if sliding {
		out.Velocity.Y = gamemath.AtLeast(out.Velocity.Y, -m.cfg.WallSlideSpeed)
		if !s.WallSliding {
			out.emit(EventWallSlideStarted)
		}
	} else if s.WallSliding {
		out.emit(EventWallSlideEnded)
	}
	s.WallSliding = sliding
}

// shapeFall layers extra gravity on top of the integrator's: heavier while
// falling, and while rising with the jump button released.
func (m *Machine) shapeFall(jumpHeld bool, dt float64, out *Output) {
	switch {
	case out.Velocity.Y < 0:
		out.Velocity.Y += m.gravity * (m.cfg.FallMultiplier - 1) * dt
	case out.Velocity.Y > 0 && !jumpHeld:
		out.Velocity.Y += m.gravity * (m.cfg.LowJumpMultiplier - 1) * dt
	}
}

func (m *Machine) advanceTimers(dt float64, out *Output) {
	s := &m.state
	expired := s.Timers.Advance(dt)
	if expired.Dash {
		s.Dashing = false
		out.emit(EventDashEnded)
	}
	if expired.DashCooldown {
		s.CanDash = true
		out.emit(EventDashReady)
	}
	if expired.AttackCooldown {
		s.CanAttack = true
		out.emit(EventAttackReady)
	}
}

func (m *Machine) applyEdges(out *Output) {
	s := &m.state
	if s.Grounded && !s.Previous.Grounded {
		s.JumpCount = 0
		if !s.CanDash {
			s.CanDash = true
			s.Timers.DashCooldown.Stop()
			out.emit(EventDashReady)
		}
		out.emit(EventLanded)
	}
	if s.TouchingWall() && !s.Previous.TouchingWall() && !s.Grounded && s.JumpCount > 0 {
		s.JumpCount = 0
		out.emit(EventWallReset)
	}
}
