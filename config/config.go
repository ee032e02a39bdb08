// Package config resolves startup settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/engine"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every startup setting; fixed once the game starts
type Config struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	SpeedThreshold int           `yaml:"speed_threshold"`
	TickPeriod     int           `yaml:"tick_period"`
	RampEvery      int           `yaml:"ramp_every"`
	FirstShape     int           `yaml:"first_shape"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	Sound          bool          `yaml:"sound"`
	Debug          bool          `yaml:"debug"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:          constants.DefaultFieldWidth,
		Height:         constants.DefaultFieldHeight,
		SpeedThreshold: constants.DefaultSpeedThreshold,
		TickPeriod:     constants.DefaultTickPeriod,
		RampEvery:      constants.DefaultRampEvery,
		FirstShape:     constants.DefaultFirstShape,
		FrameInterval:  constants.FrameUpdateInterval,
		Sound:          true,
	}
}

// Rules converts the game-relevant settings
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		Width:          c.Width,
		Height:         c.Height,
		SpeedThreshold: c.SpeedThreshold,
		TickPeriod:     c.TickPeriod,
		RampEvery:      c.RampEvery,
		FirstShape:     core.ShapeId(c.FirstShape),
	}
}

// Validate checks the settings before anything is allocated
func (c Config) Validate() error {
	if c.FirstShape < 0 || c.FirstShape >= core.ShapeCount {
		return fmt.Errorf("%w: first_shape %d outside 0..%d", ErrInvalidConfig, c.FirstShape, core.ShapeCount-1)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval %v must be positive", ErrInvalidConfig, c.FrameInterval)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Decode overlays YAML settings onto c; unknown keys are rejected
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return c.Decode(bytes.NewReader(data))
}

// Load parses command-line args: defaults, then -config file, then flags
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	path := fs.String("config", "", "YAML settings file")
	flags := cfg
	fs.IntVar(&flags.Width, "width", cfg.Width, "field width including borders")
	fs.IntVar(&flags.Height, "height", cfg.Height, "field height including the floor")
	fs.IntVar(&flags.SpeedThreshold, "speed", cfg.SpeedThreshold, "tick counter value from which gravity applies")
	fs.IntVar(&flags.TickPeriod, "period", cfg.TickPeriod, "tick counter wrap period")
	fs.IntVar(&flags.RampEvery, "ramp", cfg.RampEvery, "points per speed step (0 keeps speed constant)")
	fs.IntVar(&flags.FirstShape, "first", cfg.FirstShape, "shape id of the first piece (0-6)")
	fs.DurationVar(&flags.FrameInterval, "tick", cfg.FrameInterval, "game loop tick interval")
	fs.BoolVar(&flags.Sound, "sound", cfg.Sound, "play sound cues")
	fs.BoolVar(&flags.Debug, "debug", cfg.Debug, "write debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return cfg, err
		}
	}

	// Explicit flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "speed":
			cfg.SpeedThreshold = flags.SpeedThreshold
		case "period":
			cfg.TickPeriod = flags.TickPeriod
		case "ramp":
			cfg.RampEvery = flags.RampEvery
		case "first":
			cfg.FirstShape = flags.FirstShape
		case "tick":
			cfg.FrameInterval = flags.FrameInterval
		case "sound":
			cfg.Sound = flags.Sound
		case "debug":
			cfg.Debug = flags.Debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
