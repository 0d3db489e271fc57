// Package inputscript drives a character from a tengo script instead of a
// keyboard.
//
// A script defines a function sample(tick, time) returning a map of the
// buttons held on that tick:
//
//	sample := func(tick, time) {
//		return {axis: tick < 50 ? 1 : 0, jump: tick == 60}
//	}
//
// Recognised keys are axis (number), jump, dash and attack (bool). Missing
// keys read as released. Presses are the released-to-held edges, the way a
// keyboard reports them.
package inputscript

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrScript wraps every compile, run and decode failure.
var ErrScript = errors.New("input script")

const dispatchScript = `
__out := sample(__tick, __time)
`

type buttons struct {
	jump, dash, attack bool
}

// Sampler produces one ability.Input per tick from a compiled script.
type Sampler struct {
	name     string
	compiled *tengo.Compiled
	dt       float64
	tick     int
	prev     buttons
}

// New compiles src. dt is the fixed tick length used for the time argument.
func New(name string, src []byte, dt float64) (*Sampler, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	if err := script.Add("__tick", 0); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrScript, name, err)
	}
	if err := script.Add("__time", 0.0); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrScript, name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w %s: compile: %v", ErrScript, name, err)
	}
	return &Sampler{name: name, compiled: compiled, dt: dt}, nil
}

// Load reads and compiles a script from fsys.
func Load(fsys fs.FS, p string, dt float64) (*Sampler, error) {
	src, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrScript, p, err)
	}
	return New(strings.TrimSuffix(path.Base(p), ".tengo"), src, dt)
}

func (s *Sampler) Name() string {
	return s.name
}

// Tick is the number of samples taken so far.
func (s *Sampler) Tick() int {
	return s.tick
}

// Sample runs the script for the next tick.
func (s *Sampler) Sample() (ability.Input, error) {
	tick := s.tick
	s.tick++

	if err := s.compiled.Set("__tick", tick); err != nil {
		return ability.Input{}, s.wrap(tick, err)
	}
	if err := s.compiled.Set("__time", float64(tick)*s.dt); err != nil {
		return ability.Input{}, s.wrap(tick, err)
	}
	if err := s.compiled.Run(); err != nil {
		return ability.Input{}, s.wrap(tick, err)
	}

	fields := map[string]interface{}{}
	if out := s.compiled.Get("__out"); !out.IsUndefined() {
		if fields = out.Map(); fields == nil {
			return ability.Input{}, s.wrap(tick, fmt.Errorf("sample returned %s, want map", out.ValueType()))
		}
	}

	axis, err := number(fields, "axis")
	if err != nil {
		return ability.Input{}, s.wrap(tick, err)
	}
	var held buttons
	for key, dst := range map[string]*bool{"jump": &held.jump, "dash": &held.dash, "attack": &held.attack} {
		if *dst, err = flag(fields, key); err != nil {
			return ability.Input{}, s.wrap(tick, err)
		}
	}

	in := ability.Input{
		Axis:          axis,
		JumpPressed:   held.jump && !s.prev.jump,
		JumpHeld:      held.jump,
		DashPressed:   held.dash && !s.prev.dash,
		AttackPressed: held.attack && !s.prev.attack,
	}
	s.prev = held
	return in, nil
}

func (s *Sampler) wrap(tick int, err error) error {
	return fmt.Errorf("%w %s: tick %d: %v", ErrScript, s.name, tick, err)
}

func number(fields map[string]interface{}, key string) (float64, error) {
	switch v := fields[key].(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("%s is %T, want number", key, v)
	}
}

func flag(fields map[string]interface{}, key string) (bool, error) {
	switch v := fields[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("%s is %T, want bool", key, v)
	}
}
