package ability

// timerEpsilon absorbs float drift from summing fixed steps, so a 0.15s
// timer at 60 ticks/s expires on the 9th step and not the 10th.
const timerEpsilon = 1e-9

// Timer is a countdown in seconds. An inactive timer has no value and is
// never decremented.
type Timer struct {
	remaining float64
	active    bool
}

// Start arms the timer with d seconds, restarting it if already running.
func (t *Timer) Start(d float64) {
	t.remaining = d
	t.active = true
}

// Stop disarms the timer without firing it.
func (t *Timer) Stop() {
	t.remaining = 0
	t.active = false
}

// Advance decrements an active timer by dt and reports whether it expired
// on this call. An expired timer rests at exactly 0 and reports false on
// every later call until restarted.
func (t *Timer) Advance(dt float64) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining > timerEpsilon {
		return false
	}
	t.remaining = 0
	t.active = false
	return true
}

func (t Timer) Active() bool {
	return t.active
}

func (t Timer) Remaining() float64 {
	return t.remaining
}

// Timers holds the three ability countdowns of a character.
type Timers struct {
	Dash           Timer
	DashCooldown   Timer
	AttackCooldown Timer
}

// Expired reports which timers fired during one Advance.
type Expired struct {
	Dash           bool
	DashCooldown   bool
	AttackCooldown bool
}

// Advance steps every active timer by dt.
func (t *Timers) Advance(dt float64) Expired {
	return Expired{
		Dash:           t.Dash.Advance(dt),
		DashCooldown:   t.DashCooldown.Advance(dt),
		AttackCooldown: t.AttackCooldown.Advance(dt),
	}
}
