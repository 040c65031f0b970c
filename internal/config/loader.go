// Package config resolves a simulation configuration from variant presets,
// YAML overlays and command line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rps-arena/internal/sims/rps"
)

// Source describes where the YAML overlay came from.
type Source string

// Options drives Resolve.
type Options struct {
	// Path is an explicit YAML file. When set it must exist.
	Path string
	// Variant overrides the variant named by the YAML overlay.
	Variant string
	// Seed replaces the configured seed when non-zero.
	Seed int64
	// Overrides are flag-style key/value pairs applied last.
	Overrides map[string]string
}

// Resolve loads the overlay, applies overrides and validates the result.
func Resolve(opts Options) (rps.Config, Source, error) {
	cfg, src, err := Load(opts.Path, opts.Variant)
	if err != nil {
		return cfg, src, err
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if err := rps.ApplyOverrides(&cfg, opts.Overrides); err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

// Load builds a configuration from the named variant preset overlaid with YAML.
// Search order: customPath -> ~/.rps/config.yaml -> ./configs/rps.yaml -> embedded default.
// A variant argument wins over the variant named inside the YAML.
func Load(customPath, variant string) (rps.Config, Source, error) {
	data, src, err := readOverlay(customPath)
	if err != nil {
		return rps.Config{}, src, err
	}
	cfg, err := Overlay(data, variant)
	if err != nil {
		return cfg, src, fmt.Errorf("failed to parse config %s: %w", src, err)
	}
	return cfg, src, nil
}

// Overlay decodes data on top of the preset for variant, or for the variant
// the document names when variant is empty.
func Overlay(data []byte, variant string) (rps.Config, error) {
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return rps.Config{}, err
	}
	name := variant
	if name == "" {
		name = head.Variant
	}
	if name == "" {
		name = DefaultVariant
	}
	cfg, err := rps.Preset(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Variant = name
	return cfg, nil
}

func readOverlay(customPath string) ([]byte, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, Source(customPath), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return data, Source(customPath), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil && validYAML(data) {
			return data, Source(userCfgPath), nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "rps.yaml")
	if data, err := os.ReadFile(local); err == nil && validYAML(data) {
		return data, Source(local), nil
	}

	return defaultYAML, Source("embedded"), nil
}

func validYAML(data []byte) bool {
	var probe map[string]any
	return yaml.Unmarshal(data, &probe) == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rps", filename)
}

// ParseOverrides turns repeated key=value flags into a map. Later pairs win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q, want key=value", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
