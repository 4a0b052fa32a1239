package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridcrawl/config"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// globalOptions are shared by every command
type globalOptions struct {
	configPath string
	seed       int64
	logLevel   string
}

// App is the gridcrawl command tree
type App struct {
	root   *cobra.Command
	opts   *globalOptions
	stdout io.Writer
	stderr io.Writer
}

// New creates the CLI application, running the game is the default command
func New() *App {
	app := &App{
		opts:   &globalOptions{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "gridcrawl",
		Short: "Turn-based dungeon crawler in the terminal",
		Long: `gridcrawl is a turn-based dungeon crawler on a tile grid.

Actors take turns by faction: the player moves or attacks, then every enemy
acts once, then control returns to the player. Animations play out over several
frames while the next decision waits.

Controls (defaults):
  w a s d / arrows   move, hold to keep walking
  1                  aim, then a direction to attack
  >                  descend to a new floor
  m                  mute
  q / Ctrl+C         quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGame(cmd)
		},
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	flags.Int64Var(&app.opts.seed, "seed", 0, "Dungeon seed, 0 picks a random layout (overrides config)")
	flags.StringVar(&app.opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSimulateCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "gridcrawl version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// loadConfig reads the config file and environment, then applies flag overrides
func (a *App) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Dungeon.Seed = a.opts.seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
