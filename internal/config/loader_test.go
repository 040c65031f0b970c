package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rps-arena/internal/sims/rps"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)
	cfg, src, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if src != "embedded" {
		t.Fatalf("expected embedded source, got %s", src)
	}
	want := rps.DefaultConfig()
	if cfg.Variant != DefaultVariant || cfg.Window != want.Window || cfg.Population != want.Population {
		t.Fatalf("embedded default should reproduce the bounce preset, got %+v", cfg)
	}
}

func TestLoadVariantKeepsPresetFields(t *testing.T) {
	isolate(t)
	cfg, _, err := Load("", "flock")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Population != 100 || cfg.Policy != rps.PolicyFlock || cfg.Params.Jitter != 0.025 {
		t.Fatalf("embedded overlay must not clobber the flock preset: %+v", cfg)
	}
}

func TestLoadCustomPathOverlay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "variant: chase\npopulation: 12\nparams:\n  speed: 4\n")

	cfg, src, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != path {
		t.Fatalf("expected source %s, got %s", path, src)
	}
	if cfg.Variant != "chase" || cfg.Policy != rps.PolicyPursuit {
		t.Fatalf("variant from YAML not applied: %+v", cfg)
	}
	if cfg.Population != 12 || cfg.Params.Speed != 4 || cfg.Params.Jitter != 0.05 {
		t.Fatalf("overlay should only replace named fields: %+v", cfg)
	}

	cfg, _, err = Load(path, "flock")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "flock" || cfg.Policy != rps.PolicyFlock || cfg.Population != 12 {
		t.Fatalf("explicit variant should win over YAML: %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	isolate(t)
	writeFile(t, filepath.Join("configs", "rps.yaml"), "population: 7\n")
	cfg, src, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Population != 7 || !strings.HasSuffix(string(src), "rps.yaml") {
		t.Fatalf("local config not picked up: %+v from %s", cfg, src)
	}

	home, _ := os.UserHomeDir()
	writeFile(t, filepath.Join(home, ".rps", "config.yaml"), "population: 9\n")
	cfg, _, err = Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Population != 9 {
		t.Fatalf("user config should win over local config, got %d", cfg.Population)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Fatal("missing custom path must fail")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "population: [1, 2\n")
	if _, _, err := Load(path, ""); err == nil {
		t.Fatal("malformed YAML must fail")
	}
	if _, _, err := Load("", "lizard"); err == nil {
		t.Fatal("unknown variant must fail")
	}
}

func TestResolveAppliesSeedAndOverrides(t *testing.T) {
	isolate(t)
	cfg, _, err := Resolve(Options{
		Variant:   "tribes",
		Seed:      99,
		Overrides: map[string]string{"population": "30", "jitter": "0"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 99 || cfg.Population != 30 || cfg.Params.Jitter != 0 || cfg.Placement != rps.PlacementSegregated {
		t.Fatalf("resolve did not apply everything: %+v", cfg)
	}

	if _, _, err := Resolve(Options{Overrides: map[string]string{"entity_size": "-1"}}); err == nil {
		t.Fatal("resolve must validate the final config")
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"speed=3", " jitter = 0.1 ", "speed=4"})
	if err != nil {
		t.Fatal(err)
	}
	if got["speed"] != "4" || got["jitter"] != "0.1" {
		t.Fatalf("unexpected overrides %v", got)
	}
	if _, err := ParseOverrides([]string{"speed"}); err == nil {
		t.Fatal("pairs without '=' must fail")
	}
	if _, err := ParseOverrides([]string{"=3"}); err == nil {
		t.Fatal("pairs without a key must fail")
	}
}
