package combat

// Health is a pool that depletes once and stays depleted.
type Health struct {
	Current   float64
	Max       float64
	destroyed bool
}

func NewHealth(maxHealth float64) Health {
	return Health{Current: maxHealth, Max: maxHealth}
}

// Apply subtracts amount and reports whether the pool just ran out. Hits
// after depletion change nothing.
func (h *Health) Apply(amount float64) bool {
	if h.destroyed {
		return false
	}
	h.Current -= amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	h.destroyed = true
	return true
}

func (h Health) Depleted() bool {
	return h.destroyed
}

// Target is a standalone Damageable backed by a Health pool. OnDestroyed
// runs once, on the hit that depletes it.
type Target struct {
	Name        string
	Health      Health
	OnDestroyed func(*Target)
}

func NewTarget(name string, maxHealth float64) *Target {
	return &Target{Name: name, Health: NewHealth(maxHealth)}
}

func (t *Target) TakeDamage(amount float64) bool {
	if !t.Health.Apply(amount) {
		return false
	}
	if t.OnDestroyed != nil {
		t.OnDestroyed(t)
	}
	return true
}

func (t *Target) Destroyed() bool {
	return t.Health.Depleted()
}
