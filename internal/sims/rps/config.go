package rps

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"rps-arena/internal/core"
)

// Motion selects how Entity.Vel is interpreted by the integrator.
type Motion string

const (
	// MotionHeading treats Vel as a unit heading scaled by Params.Speed.
	MotionHeading Motion = "heading"
	// MotionVelocity treats Vel as a free velocity capped by Params.MaxVelocity.
	MotionVelocity Motion = "velocity"
)

// Policy selects the per-frame steering model.
type Policy string

const (
	PolicyNone    Policy = "none"
	PolicyPursuit Policy = "pursuit"
	PolicyFlock   Policy = "flock"
)

// Placement selects how the initial population is laid out.
type Placement string

const (
	PlacementMixed      Placement = "mixed"
	PlacementSegregated Placement = "segregated"
)

// Style selects how entities are drawn.
type Style string

const (
	StyleRect   Style = "rect"
	StyleSprite Style = "sprite"
)

// Params holds the tunables the HUD can adjust at runtime.
type Params struct {
	Speed       float64    `yaml:"speed"`
	Jitter      float64    `yaml:"jitter"`
	ForceStep   float64    `yaml:"force_step"`
	MaxVelocity float64    `yaml:"max_velocity"`
	Forces      ForceTable `yaml:"forces"`
}

// RenderConfig describes the look of the entities.
type RenderConfig struct {
	Style    Style             `yaml:"style"`
	Textures map[string]string `yaml:"textures"`
}

// TexturePath returns the configured sprite path for k.
func (r RenderConfig) TexturePath(k Kind) string {
	return r.Textures[k.String()]
}

// Config controls a rock-paper-scissors world.
type Config struct {
	Variant string      `yaml:"variant"`
	Window  core.Window `yaml:"window"`
	Seed    int64       `yaml:"seed"`

	Population int       `yaml:"population"`
	Placement  Placement `yaml:"placement"`
	EntitySize float64   `yaml:"entity_size"`

	Motion     Motion `yaml:"motion"`
	Policy     Policy `yaml:"policy"`
	Extinction bool   `yaml:"extinction"`

	Params Params       `yaml:"params"`
	Render RenderConfig `yaml:"render"`
}

// DefaultConfig returns the plain bouncing configuration.
func DefaultConfig() Config {
	return Config{
		Variant: "bounce",
		Window: core.Window{
			Width:         1280,
			Height:        960,
			Title:         "Rock Paper Scissors",
			PixelsPerUnit: 24,
		},
		Seed:       1337,
		Population: 50,
		Placement:  PlacementMixed,
		EntitySize: 1,
		Motion:     MotionHeading,
		Policy:     PolicyNone,
		Params: Params{
			Speed:       2,
			Jitter:      0.05,
			ForceStep:   0.5,
			MaxVelocity: 1.5,
			Forces:      ForceTable{Hunt: 10, Flee: -10, Neutral: -1},
		},
		Render: RenderConfig{Style: StyleRect},
	}
}

// Validate rejects configurations the simulation cannot run.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.PixelsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("pixels per unit %g must be positive", c.Window.PixelsPerUnit))
	}
	if c.Population < 0 {
		errs = append(errs, fmt.Errorf("population %d must not be negative", c.Population))
	}
	if c.EntitySize <= 0 {
		errs = append(errs, fmt.Errorf("entity size %g must be positive", c.EntitySize))
	} else if half := c.Window.HalfExtent(); c.EntitySize >= 2*half.X || c.EntitySize >= 2*half.Y {
		errs = append(errs, fmt.Errorf("entity size %g does not fit the arena", c.EntitySize))
	}
	switch c.Motion {
	case MotionHeading, MotionVelocity:
	default:
		errs = append(errs, fmt.Errorf("unknown motion %q", c.Motion))
	}
	switch c.Policy {
	case PolicyNone, PolicyPursuit, PolicyFlock:
	default:
		errs = append(errs, fmt.Errorf("unknown policy %q", c.Policy))
	}
	switch c.Placement {
	case PlacementMixed, PlacementSegregated:
	default:
		errs = append(errs, fmt.Errorf("unknown placement %q", c.Placement))
	}
	switch c.Render.Style {
	case StyleRect:
	case StyleSprite:
		for _, k := range Kinds {
			if c.Render.TexturePath(k) == "" {
				errs = append(errs, fmt.Errorf("sprite style needs a texture for %s", k))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unknown render style %q", c.Render.Style))
	}
	if c.Params.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("max velocity %g must be positive", c.Params.MaxVelocity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rps: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// OverrideKeys lists the keys accepted by ApplyOverrides.
func OverrideKeys() []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type override func(c *Config, v string) error

var overrides = map[string]override{
	"w":             intOverride(func(c *Config) *int { return &c.Window.Width }),
	"h":             intOverride(func(c *Config) *int { return &c.Window.Height }),
	"ppu":           floatOverride(func(c *Config) *float64 { return &c.Window.PixelsPerUnit }),
	"seed":          int64Override(func(c *Config) *int64 { return &c.Seed }),
	"population":    intOverride(func(c *Config) *int { return &c.Population }),
	"entity_size":   floatOverride(func(c *Config) *float64 { return &c.EntitySize }),
	"speed":         floatOverride(func(c *Config) *float64 { return &c.Params.Speed }),
	"jitter":        floatOverride(func(c *Config) *float64 { return &c.Params.Jitter }),
	"force_step":    floatOverride(func(c *Config) *float64 { return &c.Params.ForceStep }),
	"max_velocity":  floatOverride(func(c *Config) *float64 { return &c.Params.MaxVelocity }),
	"force_hunt":    floatOverride(func(c *Config) *float64 { return &c.Params.Forces.Hunt }),
	"force_flee":    floatOverride(func(c *Config) *float64 { return &c.Params.Forces.Flee }),
	"force_neutral": floatOverride(func(c *Config) *float64 { return &c.Params.Forces.Neutral }),
	"title": func(c *Config, v string) error {
		c.Window.Title = v
		return nil
	},
	"placement": func(c *Config, v string) error {
		c.Placement = Placement(strings.ToLower(v))
		return nil
	},
	"motion": func(c *Config, v string) error {
		c.Motion = Motion(strings.ToLower(v))
		return nil
	},
	"policy": func(c *Config, v string) error {
		c.Policy = Policy(strings.ToLower(v))
		return nil
	},
	"style": func(c *Config, v string) error {
		c.Render.Style = Style(strings.ToLower(v))
		return nil
	},
	"extinction": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Extinction = b
		return nil
	},
}

// ApplyOverrides updates cfg from flag-style key/value pairs. Texture paths
// use the keys texture_rock, texture_paper and texture_scissors.
func ApplyOverrides(cfg *Config, kv map[string]string) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := kv[key]
		if name, ok := strings.CutPrefix(key, "texture_"); ok {
			kind, err := ParseKind(name)
			if err != nil {
				return fmt.Errorf("rps: override %s: %w", key, err)
			}
			if cfg.Render.Textures == nil {
				cfg.Render.Textures = map[string]string{}
			}
			cfg.Render.Textures[kind.String()] = value
			continue
		}
		apply, ok := overrides[key]
		if !ok {
			return fmt.Errorf("rps: unknown override %q", key)
		}
		if err := apply(cfg, value); err != nil {
			return fmt.Errorf("rps: override %s=%s: %w", key, value, err)
		}
	}
	return nil
}

func intOverride(field func(*Config) *int) override {
	return func(c *Config, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func int64Override(field func(*Config) *int64) override {
	return func(c *Config, v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func floatOverride(field func(*Config) *float64) override {
	return func(c *Config, v string) error {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}
