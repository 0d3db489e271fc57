// Package ability is the character ability core: jump counting, wall
// reset, wall-slide, dash, attack and their timers. It has no dependency on
// the ECS or on a physics engine; contact results and body motion come in,
// velocity and gravity-scale commands go out.
package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
)

// Facing is the horizontal direction the character looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Contact is one tick of contact sensing.
type Contact struct {
	Grounded  bool
	WallLeft  bool
	WallRight bool
}

// TouchingWall reports contact with either wall.
func (c Contact) TouchingWall() bool {
	return c.WallLeft || c.WallRight
}

// State is the ability state of one character. Only Machine mutates it;
// everyone else gets copies.
type State struct {
	Facing    Facing
	JumpCount int
	MaxJumps  int

	Contact
	// Previous is last tick's contact, used for edge detection.
	Previous Contact

	WallSliding bool
	Dashing     bool
	CanDash     bool
	CanAttack   bool

	// AttackPulse is true only on the tick an attack starts.
	AttackPulse bool

	Timers Timers
}

func newState(maxJumps int) State {
	return State{
		Facing:    FacingRight,
		MaxJumps:  maxJumps,
		CanDash:   true,
		CanAttack: true,
	}
}
