package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/automoto/doomerang-abilities/assets"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/inputscript"
	"github.com/automoto/doomerang-abilities/sim"
)

func main() {
	configPath := flag.String("config", "", "Tuning YAML overlaid on the built-in defaults")
	assetsDir := flag.String("assets", "", "Load levels and scripts from this directory instead of the embedded assets")
	levelName := flag.String("level", "", "Level name (default from tuning)")
	scriptPath := flag.String("script", "scripts/demo.tengo", "Input script, relative to the assets")
	ticks := flag.Int("ticks", 500, "Ticks to simulate (0 runs until interrupted with -realtime)")
	backend := flag.String("backend", "", "Physics backend override: resolv or chipmunk")
	realtime := flag.Bool("realtime", false, "Step at the configured tick rate instead of as fast as possible")
	watch := flag.Bool("watch", false, "Re-run whenever the -config file changes")
	trace := flag.Bool("trace", false, "Log every tick that emits events")
	list := flag.Bool("list", false, "List available levels and exit")
	flag.Parse()

	var fsys fs.FS = assets.FS
	if *assetsDir != "" {
		fsys = os.DirFS(*assetsDir)
	}

	if *list {
		names, err := sim.LevelNames(fsys)
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			log.Println(name)
		}
		return
	}

	tuning, err := loadTuning(*configPath, *backend)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	r := &runner{
		fsys:     fsys,
		level:    *levelName,
		script:   *scriptPath,
		ticks:    *ticks,
		realtime: *realtime,
		trace:    *trace,
	}
	if !*realtime && *ticks <= 0 {
		log.Fatalf("-ticks must be positive without -realtime")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if !*watch {
		go func() {
			<-sigChan
			log.Println("Shutting down...")
			if !r.realtime {
				os.Exit(0)
			}
			r.stop()
		}()
		if err := r.run(tuning); err != nil {
			log.Fatalf("Simulation error: %v", err)
		}
		return
	}

	if *configPath == "" {
		log.Fatalf("-watch needs -config")
	}
	watcher, err := config.Watch(*configPath)
	if err != nil {
		log.Fatalf("Failed to watch %s: %v", *configPath, err)
	}
	defer watcher.Close()

	done := make(chan error, 1)
	start := func(t config.Tuning) {
		go func() { done <- r.run(t) }()
	}
	start(tuning)
	running := true

	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			r.stop()
			return
		case t, ok := <-watcher.Events:
			if !ok {
				return
			}
			if *backend != "" {
				t.Physics.Backend = *backend
				if err := t.Validate(); err != nil {
					log.Printf("Reload rejected: %v", err)
					continue
				}
			}
			log.Printf("Tuning reloaded from %s", *configPath)
			if running {
				r.stop()
				<-done
			}
			start(t)
			running = true
		case err, ok := <-watcher.Errors:
			if ok {
				log.Printf("Reload failed, keeping previous tuning: %v", err)
			}
		case err := <-done:
			running = false
			if err != nil {
				log.Printf("Simulation error: %v", err)
			}
			log.Println("Waiting for tuning changes...")
		}
	}
}

func loadTuning(path, backend string) (config.Tuning, error) {
	var (
		t   config.Tuning
		err error
	)
	if path != "" {
		t, err = config.Load(path)
	} else {
		var data []byte
		if data, err = fs.ReadFile(assets.FS, assets.DefaultTuning); err == nil {
			t, err = config.Parse(data)
		}
	}
	if err != nil {
		return config.Tuning{}, err
	}
	if backend != "" {
		t.Physics.Backend = backend
		if err := t.Validate(); err != nil {
			return config.Tuning{}, err
		}
	}
	return t, nil
}

type runner struct {
	fsys     fs.FS
	level    string
	script   string
	ticks    int
	realtime bool
	trace    bool

	mu   sync.Mutex
	loop *sim.GameLoop
}

func (r *runner) run(t config.Tuning) error {
	config.Apply(t)

	name := r.level
	if name == "" {
		name = config.Sim.Level
	}
	level, err := sim.LoadLevel(r.fsys, name)
	if err != nil {
		return err
	}
	sampler, err := inputscript.Load(r.fsys, r.script, config.Sim.TickDuration())
	if err != nil {
		return err
	}
	s, err := sim.New(level, sampler)
	if err != nil {
		return err
	}

	spawn := s.Spawn()
	log.Printf("Running %s from spawn %d at (%.2f, %.2f) with script %s",
		level.Name, spawn.Index, spawn.X, spawn.Y, sampler.Name())

	var report sim.Report
	if r.realtime {
		loop := sim.NewGameLoop(s, config.Sim.TickRate, r.ticks, r.onFrame)
		r.setLoop(loop)
		report, err = loop.Run()
		r.setLoop(nil)
	} else {
		report, err = s.Run(r.ticks, r.onFrame)
	}
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func (r *runner) setLoop(l *sim.GameLoop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = l
}

func (r *runner) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loop != nil {
		r.loop.Stop()
	}
}

func (r *runner) onFrame(f sim.Frame) {
	if !r.trace || len(f.Events) == 0 {
		return
	}
	log.Printf("tick %4d pos=(%6.2f, %6.2f) vy=%6.2f events=%v",
		f.Tick, f.Position.X, f.Position.Y, f.Snapshot.VerticalVelocity, f.Events)
	for _, hit := range f.Hits {
		log.Printf("tick %4d hit %s destroyed=%v", f.Tick, hit.Target, hit.Destroyed)
	}
}

func printReport(r sim.Report) {
	log.Printf("Finished after %d ticks, %d targets left, destroyed %v", r.Ticks, r.TargetsLeft, r.Destroyed)

	events := make([]ability.Event, 0, len(r.Events))
	for ev := range r.Events {
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	for _, ev := range events {
		log.Printf("  %-20s %d", ev, r.Events[ev])
	}

	f := r.Final
	log.Printf("Final pos=(%.2f, %.2f) grounded=%v wallSliding=%v dashing=%v facing=%v jumps=%d",
		f.Position.X, f.Position.Y, f.Snapshot.Grounded, f.Snapshot.WallSliding,
		f.Snapshot.Dashing, f.Snapshot.Facing, f.Snapshot.JumpCount)
}
