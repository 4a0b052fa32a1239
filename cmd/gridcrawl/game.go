package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/audio"
	"github.com/lixenwraith/gridcrawl/config"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/spawn"
	"github.com/lixenwraith/gridcrawl/status"
	"github.com/lixenwraith/gridcrawl/turn"
)

// game is one running session: world, scheduler and the host-side input state
type game struct {
	cfg      *config.Config
	world    *engine.World
	sched    *turn.Scheduler
	session  *spawn.Session
	keyboard *input.Keyboard
	reg      *status.Registry

	lastFrame time.Time
	frame     int64
}

// newGame builds the world, scheduler and first floor
// The clock drives both the drain budget and frame timestamps, sounds may be nil
func newGame(cfg *config.Config, clock engine.Clock, logger *bolt.Logger, sounds action.SoundPlayer) (*game, error) {
	w := engine.NewWorld()
	reg := status.NewRegistry()

	engine.AddResource(w.Resources, &engine.TimeResource{Now: clock.Now()})
	engine.AddResource(w.Resources, &input.State{})
	if sounds != nil {
		engine.AddResource[action.SoundPlayer](w.Resources, sounds)
	}

	sched := turn.NewScheduler(w,
		turn.WithClock(clock),
		turn.WithBudget(cfg.Scheduler.DrainBudget),
		turn.WithAttempts(cfg.Scheduler.DecisionAttempts),
		turn.WithUniformAttempts(cfg.Scheduler.UniformAttempts),
		turn.WithInitialGroup(cfg.InitialGroup()),
		turn.WithLogger(logger),
		turn.WithStatus(reg),
	)

	session, err := spawn.Bootstrap(w, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &game{
		cfg:       cfg,
		world:     w,
		sched:     sched,
		session:   session,
		keyboard:  input.NewKeyboard(cfg.Player.HoldWindow),
		reg:       reg,
		lastFrame: clock.Now(),
	}, nil
}

// step runs one host frame: time, input snapshot, scheduler tick, camera follow
func (g *game) step(now time.Time) {
	g.frame++
	engine.MustGetResource[*engine.TimeResource](g.world.Resources).Update(now, now.Sub(g.lastFrame), g.frame)
	g.lastFrame = now

	*engine.MustGetResource[*input.State](g.world.Resources) = g.keyboard.Snapshot(now)

	g.sched.Tick()
	spawn.Follow(g.world, g.session.Camera, g.session.Player)
}

// toggleMute flips sound and publishes the mute state to the status bar
func (g *game) toggleMute(p *audio.Player) {
	p.ToggleMute()
	g.reg.Bools.Get(status.KeyMuted).Store(p.IsMuted())
}

// depth is the number of floors generated so far
func (g *game) depth() int {
	if floor, ok := engine.GetResource[*action.FloorResource](g.world.Resources); ok {
		return floor.Depth
	}
	return 0
}

// outcome describes the player's state for reports
func (g *game) outcome() string {
	if g.session.Alive(g.world) {
		return "alive"
	}
	return "dead"
}

// openLogFile opens the log destination for appending, creating parent directories
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
