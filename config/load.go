package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a tuning value is out of range.
var ErrInvalid = errors.New("invalid tuning")

// Load reads a YAML tuning file and overlays it on the defaults.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Parse overlays a YAML document on the defaults and validates the result.
// Keys that are absent keep their default value; unknown keys are rejected.
func Parse(data []byte) (Tuning, error) {
	t := Defaults()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return Tuning{}, fmt.Errorf("unmarshal: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks every section for values the simulation cannot run with.
func (t Tuning) Validate() error {
	a := t.Ability
	switch {
	case a.MoveSpeed < 0:
		return invalid("ability.move_speed", a.MoveSpeed)
	case a.JumpForce <= 0:
		return invalid("ability.jump_force", a.JumpForce)
	case a.FallMultiplier < 1:
		return invalid("ability.fall_multiplier", a.FallMultiplier)
	case a.LowJumpMultiplier < 1:
		return invalid("ability.low_jump_multiplier", a.LowJumpMultiplier)
	case a.DashSpeed < 0:
		return invalid("ability.dash_speed", a.DashSpeed)
	case a.DashTime <= 0:
		return invalid("ability.dash_time", a.DashTime)
	case a.DashCooldown < 0:
		return invalid("ability.dash_cooldown", a.DashCooldown)
	case a.AttackDamage < 0:
		return invalid("ability.attack_damage", a.AttackDamage)
	case a.AttackRange < 0:
		return invalid("ability.attack_range", a.AttackRange)
	case a.AttackCooldown < 0:
		return invalid("ability.attack_cooldown", a.AttackCooldown)
	case a.WallSlideSpeed < 0:
		return invalid("ability.wall_slide_speed", a.WallSlideSpeed)
	case a.GravityScale < 0:
		return invalid("ability.gravity_scale", a.GravityScale)
	case a.AirDrag < 0:
		return invalid("ability.air_drag", a.AirDrag)
	}

	s := t.Sensor
	if s.GroundCheckRadius <= 0 {
		return invalid("sensor.ground_check_radius", s.GroundCheckRadius)
	}
	if s.WallCheckDistance < 0 {
		return invalid("sensor.wall_check_distance", s.WallCheckDistance)
	}

	p := t.Physics
	if p.Backend != BackendResolv && p.Backend != BackendChipmunk {
		return fmt.Errorf("%w: physics.backend %q", ErrInvalid, p.Backend)
	}
	if p.PixelsPerUnit <= 0 {
		return invalid("physics.pixels_per_unit", p.PixelsPerUnit)
	}
	if p.CellSize <= 0 {
		return invalid("physics.cell_size", float64(p.CellSize))
	}
	if p.Iterations <= 0 {
		return invalid("physics.iterations", float64(p.Iterations))
	}
	if p.CharacterWidth <= 0 || p.CharacterHeight <= 0 {
		return fmt.Errorf("%w: physics.character size %gx%g", ErrInvalid, p.CharacterWidth, p.CharacterHeight)
	}

	if t.Target.MaxHealth <= 0 {
		return invalid("target.max_health", t.Target.MaxHealth)
	}
	if t.Sim.TickRate <= 0 {
		return invalid("sim.tick_rate", float64(t.Sim.TickRate))
	}
	if t.Sim.Spawn < 0 {
		return invalid("sim.spawn", float64(t.Sim.Spawn))
	}
	return nil
}

func invalid(key string, v float64) error {
	return fmt.Errorf("%w: %s = %g", ErrInvalid, key, v)
}
