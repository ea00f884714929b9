package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultsMatchOceanConstants(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if cfg.Ripple.LifetimeMS != 1000 || cfg.Ripple.MinRadius != 18 || cfg.Ripple.MaxRadius != 60 {
		t.Fatalf("unexpected ripple defaults: %+v", cfg.Ripple)
	}
	if cfg.Ring.LifetimeMS != 1800 || cfg.Ring.SpawnRate != 0.07 || cfg.Ring.StartSpread != 0.3 {
		t.Fatalf("unexpected ring defaults: %+v", cfg.Ring)
	}
	if cfg.Ripple.Points != 32 || cfg.Ripple.Wobble != 2 || cfg.Ripple.Throttle != 2 {
		t.Fatalf("unexpected wobble/throttle defaults: %+v", cfg.Ripple)
	}
	top := cfg.Derived.OceanTop
	if top.R != 0x4e || top.G != 0xc6 || top.B != 0xe8 || top.A != 255 {
		t.Fatalf("ocean top color = %+v, expected #4ec6e8", top)
	}
	if cfg.Derived.RippleColor.A != 179 {
		t.Fatalf("ripple color alpha = %d, expected 179 (0.7)", cfg.Derived.RippleColor.A)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	body := "ripple:\n  lifetime_ms: 500\nring:\n  spawn_rate: 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ripple.LifetimeMS != 500 {
		t.Fatalf("lifetime = %v, expected override 500", cfg.Ripple.LifetimeMS)
	}
	if cfg.Ripple.MaxRadius != 60 {
		t.Fatalf("max radius = %v, expected default 60 to survive overlay", cfg.Ripple.MaxRadius)
	}
	if cfg.Ring.SpawnRate != 0.5 {
		t.Fatalf("spawn rate = %v, expected 0.5", cfg.Ring.SpawnRate)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"ripple.throttle":   "ripple:\n  throttle: 0\n",
		"ripple.max_radius": "ripple:\n  max_radius: 1\n",
		"ring.spawn_rate":   "ring:\n  spawn_rate: 1.5\n",
		"ocean.top_color":   "ocean:\n  top_color: \"blue\"\n",
		"ring.opacity":      "ring:\n  opacity: 2\n",
	}
	for key, body := range cases {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected validation error", key)
		}
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("%s: error %q does not name the key", key, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestBindOverridesAndFinalize(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--throttle=3", "--width=640", "--ring-rate=0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if cfg.Ripple.Throttle != 3 || cfg.Screen.Width != 640 || cfg.Ring.SpawnRate != 0 {
		t.Fatalf("flags not applied: throttle=%d width=%d rate=%v", cfg.Ripple.Throttle, cfg.Screen.Width, cfg.Ring.SpawnRate)
	}
}

func TestWriteYAMLRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Ring.LifetimeMS = 2400
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Ring.LifetimeMS != 2400 {
		t.Fatalf("ring lifetime = %v after reload, expected 2400", loaded.Ring.LifetimeMS)
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := Default().Parameters()
	p, ok := snap.Lookup("ripple.throttle")
	if !ok || p.Value != "2" {
		t.Fatalf("ripple.throttle = %+v (found=%v)", p, ok)
	}
	p, ok = snap.Lookup("ring.spawn_rate")
	if !ok || p.Value != "0.07" {
		t.Fatalf("ring.spawn_rate = %+v (found=%v)", p, ok)
	}
}

func TestApplyFlagsKeepsFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	if err := os.WriteFile(path, []byte("ripple:\n  throttle: 4\nscreen:\n  width: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Default().Bind(fs)
	if err := fs.Parse([]string{"--width=640"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		t.Fatalf("ApplyFlags: %v", err)
	}
	if cfg.Screen.Width != 640 {
		t.Fatalf("width = %d, expected flag override 640", cfg.Screen.Width)
	}
	if cfg.Ripple.Throttle != 4 {
		t.Fatalf("throttle = %d, expected file value 4 to survive unchanged flags", cfg.Ripple.Throttle)
	}
}

func TestApplyFlagsValidates(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Default().Bind(fs)
	if err := fs.Parse([]string{"--ring-rate=2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := Default()
	if err := cfg.ApplyFlags(fs); err == nil || !strings.Contains(err.Error(), "ring.spawn_rate") {
		t.Fatalf("expected spawn rate validation error, got %v", err)
	}
}
