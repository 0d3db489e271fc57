package config

// Offset is a point relative to the character's position, in world units.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AbilityConfig contains the character ability tuning. Values are copied
// into a character when it spawns and never change for that character.
type AbilityConfig struct {
	// Movement
	MoveSpeed         float64 `yaml:"move_speed"`
	JumpForce         float64 `yaml:"jump_force"`
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`
	DoubleJumpEnabled bool    `yaml:"double_jump_enabled"`

	// Dash
	DashSpeed    float64 `yaml:"dash_speed"`
	DashTime     float64 `yaml:"dash_time"`     // seconds
	DashCooldown float64 `yaml:"dash_cooldown"` // seconds

	// Attack
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackRange    float64 `yaml:"attack_range"`    // offset along facing and radius of the hit circle
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds

	// Wall
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`

	// Body
	GravityScale float64 `yaml:"gravity_scale"`
	AirDrag      float64 `yaml:"air_drag"`
}

// SensorConfig places the contact probes around the character. A nil
// ground check falls back to a downward ray from the character position;
// wall probes run only when both wall checks are set.
type SensorConfig struct {
	GroundCheck       *Offset `yaml:"ground_check"`
	GroundCheckRadius float64 `yaml:"ground_check_radius"`
	WallCheckLeft     *Offset `yaml:"wall_check_left"`
	WallCheckRight    *Offset `yaml:"wall_check_right"`
	WallCheckDistance float64 `yaml:"wall_check_distance"`
}

// PhysicsConfig contains the motion-integration settings.
type PhysicsConfig struct {
	Backend       string  `yaml:"backend"` // BackendResolv or BackendChipmunk
	Gravity       float64 `yaml:"gravity"` // world gravity along Y, negative is down
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	CellSize      int     `yaml:"cell_size"` // resolv grid cell, in pixels
	Iterations    int     `yaml:"iterations"` // chipmunk solver iterations

	// Character collision box, centered on the character position
	CharacterWidth  float64 `yaml:"character_width"`
	CharacterHeight float64 `yaml:"character_height"`
}

// TargetConfig contains configuration for damageable targets.
type TargetConfig struct {
	MaxHealth float64 `yaml:"max_health"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// SimConfig contains headless simulation settings.
type SimConfig struct {
	TickRate int    `yaml:"tick_rate"` // fixed steps per second
	Level    string `yaml:"level"`
	Spawn    int    `yaml:"spawn"` // spawn point index; unknown indices use the first spawn
}

// Tuning groups every section so a YAML document can override any of them.
type Tuning struct {
	Ability AbilityConfig `yaml:"ability"`
	Sensor  SensorConfig  `yaml:"sensor"`
	Physics PhysicsConfig `yaml:"physics"`
	Target  TargetConfig  `yaml:"target"`
	Sim     SimConfig     `yaml:"sim"`
}

// Physics backends
const (
	BackendResolv   = "resolv"
	BackendChipmunk = "chipmunk"
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Global configuration instances
var Ability AbilityConfig
var Sensor SensorConfig
var Physics PhysicsConfig
var Target TargetConfig
var Sim SimConfig

func init() {
	Apply(Defaults())
}

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Ability: AbilityConfig{
			MoveSpeed:         6,
			JumpForce:         11,
			FallMultiplier:    1.5,
			LowJumpMultiplier: 1.2,
			DoubleJumpEnabled: false,

			DashSpeed:    15,
			DashTime:     0.15,
			DashCooldown: 1.5,

			AttackDamage:   10,
			AttackRange:    1.5,
			AttackCooldown: 0.5,

			WallSlideSpeed: 3,

			GravityScale: 2,
			AirDrag:      0.5,
		},
		Sensor: SensorConfig{
			GroundCheck:       &Offset{X: 0, Y: -0.5},
			GroundCheckRadius: 0.3,
			WallCheckLeft:     &Offset{X: -0.4, Y: 0},
			WallCheckRight:    &Offset{X: 0.4, Y: 0},
			WallCheckDistance: 0.6,
		},
		Physics: PhysicsConfig{
			Backend:         BackendResolv,
			Gravity:         -9.81,
			PixelsPerUnit:   16,
			CellSize:        16,
			Iterations:      10,
			CharacterWidth:  0.8,
			CharacterHeight: 1,
		},
		Target: TargetConfig{
			MaxHealth: 30,
			Width:     1,
			Height:    1,
		},
		Sim: SimConfig{
			TickRate: 50,
			Level:    "sandbox",
		},
	}
}

// Current returns the global configuration as a Tuning value.
func Current() Tuning {
	return Tuning{
		Ability: Ability,
		Sensor:  Sensor,
		Physics: Physics,
		Target:  Target,
		Sim:     Sim,
	}
}

// Apply replaces the global configuration.
func Apply(t Tuning) {
	Ability = t.Ability
	Sensor = t.Sensor
	Physics = t.Physics
	Target = t.Target
	Sim = t.Sim
}

// TickDuration is the fixed simulation step in seconds.
func (s SimConfig) TickDuration() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}

// MaxJumps is 2 with double jump enabled, 1 otherwise.
func (a AbilityConfig) MaxJumps() int {
	if a.DoubleJumpEnabled {
		return 2
	}
	return 1
}
