package ability

import (
	"math"

	cfg "github.com/automoto/doomerang-abilities/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// Snapshot is the read-only view presentation polls once per refresh.
type Snapshot struct {
	Grounded         bool
	WallSliding      bool
	Dashing          bool
	HorizontalSpeed  float64 // magnitude
	VerticalVelocity float64
	Facing           Facing
	AttackPulse      bool

	JumpCount               int
	CanDash                 bool
	CanAttack               bool
	DashRemaining           float64
	DashCooldownRemaining   float64
	AttackCooldownRemaining float64
}

// NewSnapshot combines ability state with the body velocity after motion
// integration.
func NewSnapshot(s State, velocity math2.Vec2) Snapshot {
	return Snapshot{
		Grounded:         s.Grounded,
		WallSliding:      s.WallSliding,
		Dashing:          s.Dashing,
		HorizontalSpeed:  math.Abs(velocity.X),
		VerticalVelocity: velocity.Y,
		Facing:           s.Facing,
		AttackPulse:      s.AttackPulse,

		JumpCount:               s.JumpCount,
		CanDash:                 s.CanDash,
		CanAttack:               s.CanAttack,
		DashRemaining:           s.Timers.Dash.Remaining(),
		DashCooldownRemaining:   s.Timers.DashCooldown.Remaining(),
		AttackCooldownRemaining: s.Timers.AttackCooldown.Remaining(),
	}
}

// State picks the presentation state. Dash and attack override movement.
func (s Snapshot) State() cfg.StateID {
	switch {
	case s.Dashing:
		return cfg.Dash
	case s.AttackPulse:
		return cfg.Attack
	case s.WallSliding:
		return cfg.WallSlide
	case !s.Grounded && s.VerticalVelocity > 0:
		return cfg.Jump
	case !s.Grounded:
		return cfg.Fall
	case s.HorizontalSpeed > cfg.RunThreshold:
		return cfg.Running
	}
	return cfg.Idle
}
