// Package sim runs the ability pipeline headless: it builds an ECS world
// from a level and the global tuning, then steps it at a fixed tick.
package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/automoto/doomerang-abilities/systems"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// ErrNoSpawn is returned for levels without a character spawn point.
var ErrNoSpawn = errors.New("level has no spawn point")

// Frame is the observable result of one tick.
type Frame struct {
	Tick     int
	Position math2.Vec2
	Snapshot ability.Snapshot
	Events   []ability.Event
	Hits     []Hit
}

// Hit is one target damaged by an attack this tick.
type Hit struct {
	Target    string
	Destroyed bool
}

// Report summarises a run.
type Report struct {
	Ticks       int
	Events      map[ability.Event]int
	Destroyed   []string
	TargetsLeft int
	Final       Frame
}

// Sim is one level with one character.
type Sim struct {
	ecs       *ecs.ECS
	level     *leveldata.Level
	character *donburi.Entry
}

// New builds the world for level with the current global tuning. The
// character starts at the spawn point cfg.Sim.Spawn. source drives it; nil
// leaves it idle.
func New(level *leveldata.Level, source components.InputSampler) (*Sim, error) {
	spawn, ok := level.Spawn(cfg.Sim.Spawn)
	if !ok {
		return nil, fmt.Errorf("%s: %w", level.Name, ErrNoSpawn)
	}

	physics, err := factory.NewPhysics(level.Width, level.Height)
	if err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.Register(e)
	factory.CreateWorld(e, physics, cfg.Sim.TickDuration())

	for _, b := range level.Solids {
		factory.CreateSolid(e, collision.Rect(b))
	}
	for _, t := range level.Targets {
		factory.CreateTarget(e, t.Name, collision.Rect(t.Box), t.MaxHealth)
	}
	character := factory.CreateCharacter(e, "player", spawn.X, spawn.Y, source)
	components.Character.Get(character).SpawnIndex = spawn.Index

	log.Printf("sim: level %s %gx%g, %d solids, %d targets, backend %s at %d ticks/s",
		level.Name, level.Width, level.Height, len(level.Solids), len(level.Targets),
		cfg.Physics.Backend, cfg.Sim.TickRate)

	return &Sim{ecs: e, level: level, character: character}, nil
}

func (s *Sim) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Sim) Character() *donburi.Entry {
	return s.character
}

// Spawn is the spawn point the character started from.
func (s *Sim) Spawn() leveldata.SpawnPoint {
	spawn, _ := s.level.Spawn(components.Character.Get(s.character).SpawnIndex)
	return spawn
}

func (s *Sim) Tick() int {
	entry, _ := components.World.First(s.ecs.World)
	return components.World.Get(entry).Tick
}

// Step runs the system pipeline once. An input failure is returned after
// the tick completes with neutral input.
func (s *Sim) Step() (Frame, error) {
	tick := s.Tick()
	s.ecs.Update()

	ab := components.Ability.Get(s.character)
	frame := Frame{
		Tick:     tick,
		Position: components.Body.Get(s.character).Position(),
		Snapshot: *components.Presentation.Get(s.character),
		Events:   ab.Output.Events,
	}
	for _, hit := range ab.Hits {
		name := "?"
		if t, ok := hit.Target.(systems.TargetRef); ok {
			name = t.Name()
		}
		frame.Hits = append(frame.Hits, Hit{Target: name, Destroyed: hit.Destroyed})
	}

	if err := components.Input.Get(s.character).Err; err != nil {
		return frame, err
	}
	return frame, nil
}

// Run steps ticks times, calling onFrame after each tick when non-nil.
func (s *Sim) Run(ticks int, onFrame func(Frame)) (Report, error) {
	r := Report{Events: make(map[ability.Event]int)}
	for i := 0; i < ticks; i++ {
		frame, err := s.Step()
		if err != nil {
			return r, fmt.Errorf("tick %d: %w", frame.Tick, err)
		}
		r.record(frame)
		if onFrame != nil {
			onFrame(frame)
		}
	}
	r.TargetsLeft = s.TargetsLeft()
	return r, nil
}

// TargetsLeft counts targets that are still alive.
func (s *Sim) TargetsLeft() int {
	n := 0
	tags.Target.Each(s.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (r *Report) record(f Frame) {
	r.Ticks++
	r.Final = f
	for _, ev := range f.Events {
		r.Events[ev]++
	}
	for _, hit := range f.Hits {
		if hit.Destroyed {
			r.Destroyed = append(r.Destroyed, hit.Target)
		}
	}
}
