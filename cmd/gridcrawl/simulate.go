package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridcrawl/audio"
	"github.com/lixenwraith/gridcrawl/brain"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/parameter"
)

type simulateOptions struct {
	ticks     int
	autopilot bool
	pilotSeed int64
}

func (a *App) newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the game headless on a simulated clock and print metrics",
		Long: `Run the scheduler without a terminal. Each tick advances a simulated clock
by one frame interval. The autopilot holds random movement keys and sometimes
aims, so turns rotate between the player and the enemies.

Examples:
  gridcrawl simulate --ticks 1000 --seed 42
  gridcrawl simulate --autopilot=false --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.simulate(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.ticks, "ticks", 600, "Number of frames to run")
	cmd.Flags().BoolVar(&opts.autopilot, "autopilot", true, "Feed random player input")
	cmd.Flags().Int64Var(&opts.pilotSeed, "pilot-seed", 1, "Seed for autopilot input")

	return cmd
}

func (a *App) simulate(cmd *cobra.Command, opts *simulateOptions) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", opts.ticks)
	}
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := cfg.LoggingConfig()
	logCfg.Output = a.stderr
	logger := logging.Init(logCfg)

	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g, err := newGame(cfg, clock, logger, audio.Silent{})
	if err != nil {
		return err
	}

	var pilot *autopilot
	if opts.autopilot {
		pilot = newAutopilot(opts.pilotSeed)
	}

	ran := 0
	for ran < opts.ticks {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		clock.Advance(parameter.FrameUpdateInterval)
		now := clock.Now()
		if pilot != nil {
			pilot.drive(g, now)
		}
		g.step(now)
		ran++
		if !g.session.Alive(g.world) {
			break
		}
	}

	logging.NewEvent(logger.Info()).
		Add(logging.Int("ticks", ran)).
		Add(logging.Int("depth", g.depth())).
		Add(logging.Str("player", g.outcome())).
		Msg("simulation finished")
	g.report(a.stdout, ran)
	return nil
}

// report prints the run summary followed by every scheduler metric
func (g *game) report(w io.Writer, ticks int) {
	hp := "0/0"
	if h, ok := engine.GetStore[component.HealthComponent](g.world).Get(g.session.Player); ok {
		hp = fmt.Sprintf("%d/%d", h.Current, h.Maximum)
	}
	fmt.Fprintf(w, "ticks=%d depth=%d player=%s hp=%s\n", ticks, g.depth(), g.outcome(), hp)
	for _, line := range g.reg.Lines() {
		fmt.Fprintln(w, line)
	}
}

// aimPatience is how many frames the autopilot stays aiming without a target
const aimPatience = 30

// autopilot holds a random direction for a random number of frames
type autopilot struct {
	rng    *rand.Rand
	held   input.Intent
	left   int
	aiming int
}

func newAutopilot(seed int64) *autopilot {
	return &autopilot{rng: rand.New(rand.NewSource(seed))}
}

func (p *autopilot) drive(g *game, now time.Time) {
	kb := g.keyboard
	if g.session.PlayerBrain.State() == brain.StateAiming {
		p.aiming++
		if p.aiming > aimPatience {
			kb.Press(input.IntentToggleAttack, now)
			p.aiming = 0
			return
		}
		if p.held != input.IntentNone {
			kb.Press(p.held, now)
		}
		return
	}
	p.aiming = 0

	if p.left <= 0 {
		p.held = input.MoveIntents[p.rng.Intn(len(input.MoveIntents))]
		p.left = 10 + p.rng.Intn(30)
		if p.rng.Intn(6) == 0 {
			kb.Press(input.IntentToggleAttack, now)
		}
	}
	p.left--
	kb.Press(p.held, now)
}
