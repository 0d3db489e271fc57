package sim

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-abilities/shared/ability"
)

// GameLoop steps a Sim in real time.
type GameLoop struct {
	sim      *Sim
	tickRate int
	maxTicks int
	onFrame  func(Frame)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop at tickRate steps per second. A maxTicks of
// zero runs until Stop.
func NewGameLoop(sim *Sim, tickRate, maxTicks int, onFrame func(Frame)) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop, maxTicks or an input failure.
func (g *GameLoop) Run() (Report, error) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("sim: loop started at %d ticks/second", g.tickRate)

	r := Report{Events: make(map[ability.Event]int)}
	for {
		select {
		case <-g.stopChan:
			log.Println("sim: loop stopped")
			r.TargetsLeft = g.sim.TargetsLeft()
			return r, nil
		case <-ticker.C:
			frame, err := g.sim.Step()
			if err != nil {
				return r, fmt.Errorf("tick %d: %w", frame.Tick, err)
			}
			r.record(frame)
			if g.onFrame != nil {
				g.onFrame(frame)
			}
			if g.maxTicks > 0 && r.Ticks >= g.maxTicks {
				r.TargetsLeft = g.sim.TargetsLeft()
				return r, nil
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
