package physics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/impulse/common"
)

// Config tunes the wrapped Chipmunk space. Zero values fall back to the
// defaults when the world is created.
type Config struct {
	GravityX           float64 `yaml:"gravity_x"`
	GravityY           float64 `yaml:"gravity_y"`
	Iterations         int     `yaml:"iterations"`
	Damping            float64 `yaml:"damping"`
	SleepTimeThreshold float64 `yaml:"sleep_time_threshold"`
	CollisionSlop      float64 `yaml:"collision_slop"`
	FixedTimestep      float64 `yaml:"fixed_timestep"`
}

// DefaultConfig mirrors the space setup used across the sandbox: screen
// coordinates with +Y down and a 60 Hz fixed step.
func DefaultConfig() Config {
	return Config{
		GravityY:           common.Gravity,
		Iterations:         20,
		Damping:            1.0,
		SleepTimeThreshold: 0.5,
		CollisionSlop:      0.5,
		FixedTimestep:      1.0 / 60.0,
	}
}

// LoadConfig reads a yaml config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("physics: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("physics: unmarshal %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("physics: config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.Damping < 0 {
		return fmt.Errorf("damping must not be negative, got %g", c.Damping)
	}
	if c.FixedTimestep < 0 {
		return fmt.Errorf("fixed_timestep must not be negative, got %g", c.FixedTimestep)
	}
	return nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Iterations <= 0 {
		c.Iterations = def.Iterations
	}
	if c.Damping <= 0 {
		c.Damping = def.Damping
	}
	if c.FixedTimestep <= 0 {
		c.FixedTimestep = def.FixedTimestep
	}
	return c
}
