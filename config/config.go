// Package config loads gridcrawl settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridcrawl/audio"
	"github.com/lixenwraith/gridcrawl/dungeon"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/turn"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "GRIDCRAWL_"

// Enemy brain kinds
const (
	BrainPrint  = "print"
	BrainChase  = "chase"
	BrainScript = "script"
)

type Config struct {
	Scheduler SchedulerConfig   `yaml:"scheduler" envPrefix:"SCHEDULER_"`
	Player    PlayerConfig      `yaml:"player" envPrefix:"PLAYER_"`
	Dungeon   DungeonConfig     `yaml:"dungeon" envPrefix:"DUNGEON_"`
	Enemies   EnemyConfig       `yaml:"enemies" envPrefix:"ENEMIES_"`
	Log       LogConfig         `yaml:"log" envPrefix:"LOG_"`
	Audio     AudioConfig       `yaml:"audio" envPrefix:"AUDIO_"`
	Keys      map[string]string `yaml:"keys" env:"KEYS"`
}

type SchedulerConfig struct {
	DecisionAttempts int           `yaml:"decision_attempts" env:"DECISION_ATTEMPTS"`
	DrainBudget      time.Duration `yaml:"drain_budget" env:"DRAIN_BUDGET"`
	UniformAttempts  bool          `yaml:"uniform_attempts" env:"UNIFORM_ATTEMPTS"`
	InitialGroup     string        `yaml:"initial_group" env:"INITIAL_GROUP"`
}

type PlayerConfig struct {
	MoveBufferDelay time.Duration `yaml:"move_buffer_delay" env:"MOVE_BUFFER_DELAY"`
	HoldWindow      time.Duration `yaml:"hold_window" env:"HOLD_WINDOW"`
	AttackDamage    int           `yaml:"attack_damage" env:"ATTACK_DAMAGE"`
}

type DungeonConfig struct {
	Seed         int64 `yaml:"seed" env:"SEED"`
	RoomAttempts int   `yaml:"room_attempts" env:"ROOM_ATTEMPTS"`
	Extent       int   `yaml:"extent" env:"EXTENT"`
}

type EnemyConfig struct {
	Count  int    `yaml:"count" env:"COUNT"`
	Brain  string `yaml:"brain" env:"BRAIN"`
	Script string `yaml:"script" env:"SCRIPT"`
	Sight  int    `yaml:"sight" env:"SIGHT"`
	Damage int    `yaml:"damage" env:"DAMAGE"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	File   string `yaml:"file" env:"FILE"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			DecisionAttempts: parameter.DecisionAttempts,
			DrainBudget:      parameter.DrainBudget,
			InitialGroup:     turn.GroupPlayer.String(),
		},
		Player: PlayerConfig{
			MoveBufferDelay: parameter.MoveBufferDelay,
			HoldWindow:      parameter.HoldWindow,
			AttackDamage:    parameter.AttackDamage,
		},
		Dungeon: DungeonConfig{
			RoomAttempts: parameter.RoomPlacementAttempts,
			Extent:       parameter.DungeonExtent,
		},
		Enemies: EnemyConfig{
			Count:  parameter.DefaultEnemyCount,
			Brain:  BrainPrint,
			Damage: parameter.AttackDamage / 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			File:   "gridcrawl.log",
		},
		Audio: AudioConfig{
			Volume: 1.0,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and GRIDCRAWL_ environment variables, in that order, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting
func (c *Config) Validate() error {
	var errs []error

	if c.Scheduler.DecisionAttempts < 1 {
		errs = append(errs, fmt.Errorf("scheduler.decision_attempts must be at least 1, got %d", c.Scheduler.DecisionAttempts))
	}
	if c.Scheduler.DrainBudget <= 0 {
		errs = append(errs, fmt.Errorf("scheduler.drain_budget must be positive, got %v", c.Scheduler.DrainBudget))
	}
	if _, err := turn.ParseGroup(c.Scheduler.InitialGroup); err != nil {
		errs = append(errs, fmt.Errorf("scheduler.initial_group: %w", err))
	}
	if c.Player.MoveBufferDelay < 0 || c.Player.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("player timings must be positive"))
	}
	if c.Dungeon.RoomAttempts < 0 || c.Dungeon.Extent < 1 {
		errs = append(errs, fmt.Errorf("dungeon.room_attempts must be non-negative and dungeon.extent positive"))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("enemies.count must be non-negative, got %d", c.Enemies.Count))
	}
	switch c.Enemies.Brain {
	case BrainPrint, BrainChase:
	case BrainScript:
		if c.Enemies.Script == "" {
			errs = append(errs, fmt.Errorf("enemies.script is required for the script brain"))
		}
	default:
		errs = append(errs, fmt.Errorf("enemies.brain: unknown brain %q", c.Enemies.Brain))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// InitialGroup is the group active before the first rotation
func (c *Config) InitialGroup() turn.Group {
	g, err := turn.ParseGroup(c.Scheduler.InitialGroup)
	if err != nil {
		return turn.GroupPlayer
	}
	return g
}

// Bindings applies the key overrides to the default bindings
func (c *Config) Bindings() (*input.Bindings, error) {
	return input.LoadBindings(input.DefaultBindings(), c.Keys)
}

// DungeonConfig converts to generator parameters
func (c *Config) DungeonConfig() dungeon.Config {
	d := dungeon.DefaultConfig()
	d.Seed = c.Dungeon.Seed
	d.RoomAttempts = c.Dungeon.RoomAttempts
	d.Extent = c.Dungeon.Extent
	return d
}

// AudioConfig converts to player settings
func (c *Config) AudioConfig() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	return a
}

// LoggingConfig converts to logger settings, the output is chosen by the host
func (c *Config) LoggingConfig() logging.Config {
	l := logging.DefaultConfig()
	l.Level = c.Log.Level
	l.Format = c.Log.Format
	return l
}
