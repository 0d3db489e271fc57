package ability

// Event is an observable ability transition.
type Event int

const (
	EventNone Event = iota
	EventJumped
	EventDoubleJumped
	EventJumpRejected
	EventLanded
	EventWallReset
	EventWallSlideStarted
	EventWallSlideEnded
	EventFlipped
	EventDashStarted
	EventDashEnded
	EventDashReady
	EventAttackStarted
	EventAttackReady
	// Emitted by combat resolution, not by Step.
	EventTargetHit
	EventTargetDestroyed
)

var eventNames = [...]string{
	EventNone:             "none",
	EventJumped:           "jumped",
	EventDoubleJumped:     "double_jumped",
	EventJumpRejected:     "jump_rejected",
	EventLanded:           "landed",
	EventWallReset:        "wall_reset",
	EventWallSlideStarted: "wall_slide_started",
	EventWallSlideEnded:   "wall_slide_ended",
	EventFlipped:          "flipped",
	EventDashStarted:      "dash_started",
	EventDashEnded:        "dash_ended",
	EventDashReady:        "dash_ready",
	EventAttackStarted:    "attack_started",
	EventAttackReady:      "attack_ready",
	EventTargetHit:        "target_hit",
	EventTargetDestroyed:  "target_destroyed",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Reason explains why a trigger was not performed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWallPinned
	ReasonNoJumpsLeft
	ReasonDashUnavailable
	ReasonAttackCooldown
)

var reasonNames = [...]string{
	ReasonNone:            "none",
	ReasonWallPinned:      "wall_pinned",
	ReasonNoJumpsLeft:     "no_jumps_left",
	ReasonDashUnavailable: "dash_unavailable",
	ReasonAttackCooldown:  "attack_cooldown",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}

// Outcome is the result of one trigger request. A request that was never
// made has Requested false.
type Outcome struct {
	Requested bool
	Performed bool
	Reason    Reason
}

func performed() Outcome {
	return Outcome{Requested: true, Performed: true}
}

func rejected(r Reason) Outcome {
	return Outcome{Requested: true, Reason: r}
}
