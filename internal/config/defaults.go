package config

import (
	_ "embed"
)

//go:embed defaults/rps.yaml
var defaultYAML []byte

// DefaultVariant is used when neither the caller nor the YAML names one.
const DefaultVariant = "bounce"

// DefaultYAML returns the embedded default overlay.
func DefaultYAML() []byte {
	return defaultYAML
}
