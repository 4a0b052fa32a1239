package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridcrawl/audio"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/render"
	"github.com/lixenwraith/gridcrawl/status"
)

// runGame plays interactively in the terminal until quit or cancellation
func (a *App) runGame(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	// The screen owns stderr while running, logs go to a file
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logCfg := cfg.LoggingConfig()
	logCfg.Output = logFile
	logger := logging.Init(logCfg)

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	player := audio.NewPlayer(cfg.AudioConfig())
	if err := player.Start(); err != nil {
		// Non-fatal, game can run without sound
		logging.NewEvent(logger.Warn()).Add(logging.ErrorField(err)).Msg("audio unavailable")
	}
	defer player.Stop()

	g, err := newGame(cfg, engine.NewTimeProvider(), logger, player)
	if err != nil {
		return err
	}
	g.reg.Bools.Get(status.KeyMuted).Store(player.IsMuted())
	orchestrator, _ := render.NewGameOrchestrator(screen, g.session.Player, g.reg)

	logging.NewEvent(logger.Info()).
		Add(logging.Int64("seed", cfg.Dungeon.Seed)).
		Add(logging.Str("enemy_brain", cfg.Enemies.Brain)).
		Msg("game started")
	g.loop(cmd.Context(), screen, bindings, player, orchestrator)
	logging.NewEvent(logger.Info()).
		Add(logging.Int("depth", g.depth())).
		Add(logging.Str("player", g.outcome())).
		Msg("game ended")
	return nil
}

// loop polls terminal events into the keyboard and ticks once per frame
func (g *game) loop(ctx context.Context, screen tcell.Screen, bindings *input.Bindings, player *audio.Player, out *render.RenderOrchestrator) {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch intent := bindings.Lookup(ev); intent {
				case input.IntentQuit:
					return
				case input.IntentToggleMute:
					g.toggleMute(player)
				default:
					g.keyboard.Press(intent, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			g.step(now)
			out.RenderFrame(g.world)
		}
	}
}
