package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/marcher/animation"
	"github.com/achilleasa/marcher/log"
	"github.com/achilleasa/marcher/renderer"
	"github.com/achilleasa/marcher/tracer"
	"github.com/achilleasa/marcher/types"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Render struct {
	tracer.Options

	Workers int  `toml:"workers" comment:"number of goroutines tracing row blocks"`
	Border  bool `toml:"border" comment:"draw a border around the frame edges"`
}

type Animation struct {
	FPS           int        `toml:"fps" comment:"frame rate cap"`
	OrbitRadii    [3]float32 `toml:"orbit_radii" comment:"camera orbit amplitude along x, y and z"`
	OrbitPeriodMs int        `toml:"orbit_period_ms" comment:"milliseconds per radian of orbit phase"`
	Substeps      int        `toml:"substeps" comment:"physics steps per frame"`
	SpinMomentum  [3]float32 `toml:"spin_momentum" comment:"angular momentum of spinning bodies"`
}

type Log struct {
	Level string `toml:"level" comment:"one of debug, info, notice, warning, error"`
}

// Config holds all the settings that can be loaded from a TOML file.
type Config struct {
	Render    Render    `toml:"render"`
	Animation Animation `toml:"animation"`
	Log       Log       `toml:"log"`
}

// Get the default configuration.
func Default() *Config {
	return &Config{
		Render: Render{
			Options: tracer.DefaultOptions(),
			Workers: 1,
		},
		Animation: Animation{
			FPS:           15,
			OrbitRadii:    [3]float32{9, 7, 4},
			OrbitPeriodMs: 1500,
			Substeps:      200,
			SpinMomentum:  [3]float32{0, 3, 0.01},
		},
		Log: Log{
			Level: "notice",
		},
	}
}

// Load the configuration document at location on top of the defaults.
// The location may be a local path or an http(s) URL.
func Load(location string) (*Config, error) {
	src, err := openSource(location)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer src.Close()

	cfg, err := Decode(src)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", src.Location(), err)
	}
	return cfg, nil
}

// Decode a TOML document on top of the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strictErr.String())
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write the configuration as a TOML document.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c *Config) Validate() error {
	if err := c.Render.Options.Validate(); err != nil {
		return err
	}
	if c.Render.Workers < 1 || c.Render.Workers > c.Render.Height {
		return fmt.Errorf("%w: workers must be between 1 and the frame height; got %d", ErrInvalidConfig, c.Render.Workers)
	}

	anim := c.Animation
	switch {
	case anim.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive; got %d", ErrInvalidConfig, anim.FPS)
	case anim.OrbitPeriodMs <= 0:
		return fmt.Errorf("%w: orbit period must be positive; got %d", ErrInvalidConfig, anim.OrbitPeriodMs)
	case anim.Substeps <= 0:
		return fmt.Errorf("%w: substeps must be positive; got %d", ErrInvalidConfig, anim.Substeps)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	return nil
}

// Get the renderer options.
func (c *Config) RendererOptions() renderer.Options {
	return renderer.Options{
		Tracer:  c.Render.Options,
		Workers: c.Render.Workers,
		Border:  c.Render.Border,
	}
}

// Get the camera orbit.
func (c *Config) Orbit() animation.Orbit {
	return animation.Orbit{
		Radii:  types.Vec3(c.Animation.OrbitRadii),
		Period: time.Duration(c.Animation.OrbitPeriodMs) * time.Millisecond,
	}
}

// Get the angular momentum of spinning bodies.
func (c *Config) SpinMomentum() types.Vec3 {
	return types.Vec3(c.Animation.SpinMomentum)
}

// Get the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FPS)
}

// Get the configured log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.Notice
	}
	return level
}
