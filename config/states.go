package config

// StateID names the presentation state a character is in, the way an
// animator would pick its clip.
type StateID string

const (
	StateNone StateID = ""

	Idle      StateID = "idle"
	Running   StateID = "running"
	Jump      StateID = "jump"
	Fall      StateID = "fall"
	WallSlide StateID = "wall_slide"
	Dash      StateID = "dash"
	Attack    StateID = "attack"
)

// RunThreshold is the horizontal speed below which a grounded character
// reads as idle.
const RunThreshold = 0.01
