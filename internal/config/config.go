// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store drivers accepted in the config file.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Mirror modes accepted in the config file.
const (
	MirrorOff    = "off"
	MirrorReplay = "replay"
	MirrorResync = "resync"
)

// Config is the full server configuration.
type Config struct {
	Listen string `yaml:"listen"`
	Log    Log    `yaml:"log"`
	Store  Store  `yaml:"store"`
	Mirror string `yaml:"mirror"`
}

// Log controls the structured logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Store selects and configures the persistence backend.
type Store struct {
	Driver string `yaml:"driver"`
	// Path is the database file for the sqlite driver.
	Path  string `yaml:"path"`
	Redis Redis  `yaml:"redis"`
}

// Redis holds connection settings for the redis driver.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen: ":4000",
		Log:    Log{Level: "info", Format: "text"},
		Store:  Store{Driver: DriverMemory, Path: "stateboard.db", Redis: Redis{Addr: "localhost:6379"}},
		Mirror: MirrorOff,
	}
}

// Load reads the YAML file at path, falling back to defaults for absent
// fields. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Mirror {
	case MirrorOff, MirrorReplay, MirrorResync:
	default:
		return fmt.Errorf("unknown mirror mode %q", c.Mirror)
	}
	return nil
}
