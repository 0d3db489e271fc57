package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())

	assert.Equal(t, 6.0, d.Ability.MoveSpeed)
	assert.Equal(t, 11.0, d.Ability.JumpForce)
	assert.Equal(t, 0.15, d.Ability.DashTime)
	assert.Equal(t, 1.5, d.Ability.DashCooldown)
	assert.Equal(t, 30.0, d.Target.MaxHealth)
	assert.Equal(t, 1, d.Ability.MaxJumps())
	assert.InDelta(t, 0.02, d.Sim.TickDuration(), 1e-12)
}

func TestGlobalsInitialized(t *testing.T) {
	assert.Equal(t, Defaults().Ability, Ability)
	assert.Equal(t, BackendResolv, Physics.Backend)
}

func TestParseOverlaysDefaults(t *testing.T) {
	tuning, err := Parse([]byte(`
ability:
  double_jump_enabled: true
  dash_speed: 20
sensor:
  wall_check_left: null
physics:
  backend: chipmunk
`))
	require.NoError(t, err)

	assert.True(t, tuning.Ability.DoubleJumpEnabled)
	assert.Equal(t, 2, tuning.Ability.MaxJumps())
	assert.Equal(t, 20.0, tuning.Ability.DashSpeed)
	assert.Equal(t, 6.0, tuning.Ability.MoveSpeed, "untouched keys keep defaults")
	assert.Nil(t, tuning.Sensor.WallCheckLeft)
	assert.NotNil(t, tuning.Sensor.WallCheckRight)
	assert.Equal(t, BackendChipmunk, tuning.Physics.Backend)
}

func TestBundledTuningMatchesDefaults(t *testing.T) {
	tuning, err := Load(filepath.Join("..", "assets", "tuning", "default.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), tuning)
}

func TestParseEmptyDocument(t *testing.T) {
	tuning, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults().Ability, tuning.Ability)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "ability:\n  moon_jump: true\n"},
		{"zero dash time", "ability:\n  dash_time: 0\n"},
		{"fall multiplier below one", "ability:\n  fall_multiplier: 0.5\n"},
		{"unknown backend", "physics:\n  backend: box2d\n"},
		{"zero tick rate", "sim:\n  tick_rate: 0\n"},
		{"negative spawn", "sim:\n  spawn: -1\n"},
		{"zero pixels per unit", "physics:\n  pixels_per_unit: 0\n"},
		{"no solver iterations", "physics:\n  iterations: 0\n"},
		{"dead targets", "target:\n  max_health: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("ability:\n  jump_force: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyReplacesGlobals(t *testing.T) {
	saved := Current()
	defer Apply(saved)

	tuning := Defaults()
	tuning.Ability.MoveSpeed = 9
	Apply(tuning)
	assert.Equal(t, 9.0, Ability.MoveSpeed)
	assert.Equal(t, tuning, Current())
}

func TestWatchReportsRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ability:\n  move_speed: 6\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("ability:\n  move_speed: 8\n"), 0o644))

	select {
	case tuning := <-w.Events:
		assert.Equal(t, 8.0, tuning.Ability.MoveSpeed)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}
