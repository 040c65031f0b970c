package rps

import (
	"fmt"
	"maps"
	"sort"
)

// VariantInfo describes a registered preset.
type VariantInfo struct {
	Name    string
	Summary string
}

type variant struct {
	summary string
	preset  func() Config
}

var variants = map[string]variant{}

// RegisterVariant adds a named preset. Registering a name twice panics.
func RegisterVariant(name, summary string, preset func() Config) {
	if name == "" || preset == nil {
		return
	}
	if _, exists := variants[name]; exists {
		panic(fmt.Sprintf("rps: variant %q already registered", name))
	}
	variants[name] = variant{summary: summary, preset: preset}
}

// Variants lists the registered presets sorted by name.
func Variants() []VariantInfo {
	out := make([]VariantInfo, 0, len(variants))
	for name, v := range variants {
		out = append(out, VariantInfo{Name: name, Summary: v.summary})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (Config, error) {
	v, ok := variants[name]
	if !ok {
		return Config{}, fmt.Errorf("rps: unknown variant %q", name)
	}
	cfg := v.preset()
	cfg.Variant = name
	cfg.Render.Textures = maps.Clone(cfg.Render.Textures)
	return cfg, nil
}

func chaseConfig() Config {
	cfg := DefaultConfig()
	cfg.Policy = PolicyPursuit
	cfg.Extinction = true
	return cfg
}

func flockConfig() Config {
	cfg := DefaultConfig()
	cfg.Population = 100
	cfg.Motion = MotionVelocity
	cfg.Policy = PolicyFlock
	cfg.Extinction = true
	cfg.Params.Jitter = 0.025
	return cfg
}

func init() {
	RegisterVariant("bounce", "50 entities bouncing off the walls, no steering", DefaultConfig)
	RegisterVariant("chase", "entities steer relative to their nearest prey; extinction drains the arena", chaseConfig)
	RegisterVariant("flock", "100 entities accumulating hunt/flee forces; extinction drains the arena", flockConfig)
	RegisterVariant("tribes", "flocking with each kind starting in its own third of the arena", func() Config {
		cfg := flockConfig()
		cfg.Placement = PlacementSegregated
		return cfg
	})
	RegisterVariant("sprites", "chase drawn with textured sprites", func() Config {
		cfg := chaseConfig()
		cfg.Render = RenderConfig{
			Style: StyleSprite,
			Textures: map[string]string{
				"rock":     "assets/rock.png",
				"paper":    "assets/paper.png",
				"scissors": "assets/scissors.png",
			},
		}
		return cfg
	})
}
