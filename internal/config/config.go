// Package config loads the scorecard configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. KALI_GAME_DEFAULT_BID.
const EnvPrefix = "KALI"

const (
	defaultInitialPlayers = 4
	defaultMinPlayers     = 3
	defaultBid            = 160
	defaultBidStep        = 5
	defaultMinBid         = 160
	defaultMaxBid         = 250

	defaultLogLevel = "info"
	defaultLogFile  = "debug.log"
	defaultLogMaxMB = 10
)

// Config is the application configuration.
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig holds the presentation-layer round and setup policy.
// None of it is enforced by the scoring engine.
type GameConfig struct {
	InitialPlayers int `yaml:"initial_players" split_words:"true"` // name rows shown on the setup screen
	MinPlayers     int `yaml:"min_players" split_words:"true"`
	DefaultBid     int `yaml:"default_bid" split_words:"true"`
	BidStep        int `yaml:"bid_step" split_words:"true"`
	MinBid         int `yaml:"min_bid" split_words:"true"`
	MaxBid         int `yaml:"max_bid" split_words:"true"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level     string `yaml:"level"`
	Dir       string `yaml:"dir"` // defaults to ~/.kali-teeri
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb" split_words:"true"` // rotate when larger
}

// Load reads the YAML file at path, applies environment overrides and
// fills defaults for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// ApplyEnv overrides cfg with any KALI_* environment variables that are set.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// Validate checks that the bid stepper and setup bounds are usable.
func (c *Config) Validate() error {
	g := c.Game
	if g.MinPlayers < 2 {
		return fmt.Errorf("game.min_players must be at least 2, got %d", g.MinPlayers)
	}
	if g.InitialPlayers < g.MinPlayers {
		return fmt.Errorf("game.initial_players (%d) is below game.min_players (%d)", g.InitialPlayers, g.MinPlayers)
	}
	if g.BidStep <= 0 {
		return fmt.Errorf("game.bid_step must be positive, got %d", g.BidStep)
	}
	if g.MinBid <= 0 || g.MaxBid < g.MinBid {
		return fmt.Errorf("game bid range [%d, %d] is invalid", g.MinBid, g.MaxBid)
	}
	if g.DefaultBid < g.MinBid || g.DefaultBid > g.MaxBid {
		return fmt.Errorf("game.default_bid %d is outside [%d, %d]", g.DefaultBid, g.MinBid, g.MaxBid)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Game.InitialPlayers == 0 {
		c.Game.InitialPlayers = defaultInitialPlayers
	}
	if c.Game.MinPlayers == 0 {
		c.Game.MinPlayers = defaultMinPlayers
	}
	if c.Game.DefaultBid == 0 {
		c.Game.DefaultBid = defaultBid
	}
	if c.Game.BidStep == 0 {
		c.Game.BidStep = defaultBidStep
	}
	if c.Game.MinBid == 0 {
		c.Game.MinBid = defaultMinBid
	}
	if c.Game.MaxBid == 0 {
		c.Game.MaxBid = defaultMaxBid
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = defaultLogFile
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = defaultLogMaxMB
	}
}
