// Package config loads server configuration from an optional YAML file
// with environment variable overrides. Environment always wins, so a
// deployment can ship one config file and vary secrets per environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Audio   AudioConfig   `yaml:"audio"`
	Sweeper SweeperConfig `yaml:"sweeper"`
}

type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// AdminToken authenticates admin API requests. Empty disables the
	// admin API entirely.
	AdminToken string `yaml:"admin_token"`
}

type DBConfig struct {
	// Path to the SQLite database file. Empty uses the default data dir.
	Path string `yaml:"path"`
}

type AudioConfig struct {
	// Dir is where uploaded listening audio is stored.
	Dir string `yaml:"dir"`
}

type SweeperConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
	MaxIdleMinutes  int `yaml:"max_idle_minutes"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Audio:  AudioConfig{Dir: "audio"},
		Sweeper: SweeperConfig{
			IntervalMinutes: 10,
			MaxIdleMinutes:  180,
		},
	}
}

// Load reads path (if non-empty and present) over the defaults, then
// applies environment overrides. A named file that cannot be read is an
// error; a missing default file is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "IELTSPREP_ADDR")
	setString(&cfg.Server.AdminToken, "IELTSPREP_ADMIN_TOKEN")
	setString(&cfg.DB.Path, "IELTSPREP_DB")
	setString(&cfg.Audio.Dir, "IELTSPREP_AUDIO_DIR")
	setInt(&cfg.Sweeper.IntervalMinutes, "IELTSPREP_SWEEP_INTERVAL_MINUTES")
	setInt(&cfg.Sweeper.MaxIdleMinutes, "IELTSPREP_SESSION_MAX_IDLE_MINUTES")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Sweeper.IntervalMinutes <= 0 {
		return fmt.Errorf("sweeper.interval_minutes must be positive")
	}
	if c.Sweeper.MaxIdleMinutes <= 0 {
		return fmt.Errorf("sweeper.max_idle_minutes must be positive")
	}
	return nil
}

// SweepInterval returns the sweep cadence as a duration.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.Sweeper.IntervalMinutes) * time.Minute
}

// MaxIdle returns the session idle cutoff as a duration.
func (c Config) MaxIdle() time.Duration {
	return time.Duration(c.Sweeper.MaxIdleMinutes) * time.Minute
}
