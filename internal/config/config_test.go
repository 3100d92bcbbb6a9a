package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultRunnerConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML differs from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
player:
  run_speed: 8
timing:
  tick: 20ms
input:
  scheme: wasd
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.RunSpeed != 8 {
		t.Errorf("RunSpeed = %v, expected 8", cfg.Player.RunSpeed)
	}
	if cfg.Timing.Tick != 20*time.Millisecond {
		t.Errorf("Tick = %v, expected 20ms", cfg.Timing.Tick)
	}
	if cfg.Input.Scheme != SchemeWASD {
		t.Errorf("Scheme = %q, expected wasd", cfg.Input.Scheme)
	}

	// Untouched keys keep their defaults.
	def := DefaultRunnerConfig()
	if cfg.Player.JumpForce != def.Player.JumpForce {
		t.Errorf("JumpForce = %v, expected default %v", cfg.Player.JumpForce, def.Player.JumpForce)
	}
	if cfg.Canvas != def.Canvas {
		t.Errorf("Canvas = %+v, expected default %+v", cfg.Canvas, def.Canvas)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [unterminated")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Parse([]byte("timing:\n  tick: soon\n")); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		substr string
	}{
		{"zero canvas", func(c *RunnerConfig) { c.Canvas.Width = 0 }, "canvas"},
		{"negative gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }, "gravity"},
		{"zero player", func(c *RunnerConfig) { c.Player.Height = 0 }, "player size"},
		{"player too wide", func(c *RunnerConfig) { c.Player.Width = 1000 }, "player does not fit"},
		{"zero jump force", func(c *RunnerConfig) { c.Player.JumpForce = 0 }, "jump_force"},
		{"unreachable apex", func(c *RunnerConfig) { c.Player.Height = 100; c.Player.JumpForce = 12 }, "jump apex"},
		{"zero run speed", func(c *RunnerConfig) { c.Player.RunSpeed = 0 }, "run_speed"},
		{"zero obstacle", func(c *RunnerConfig) { c.Obstacle.Width = 0 }, "obstacle size"},
		{"obstacle too tall", func(c *RunnerConfig) { c.Obstacle.Height = 400 }, "obstacle does not fit"},
		{"zero tick", func(c *RunnerConfig) { c.Timing.Tick = 0 }, "timing"},
		{"negative countdown", func(c *RunnerConfig) { c.Timing.CountdownFrom = -1 }, "countdown_from"},
		{"zero hold window", func(c *RunnerConfig) { c.Input.HoldWindow = 0 }, "hold_window"},
		{"unknown scheme", func(c *RunnerConfig) { c.Input.Scheme = "joystick" }, "scheme"},
		{"unknown colour", func(c *RunnerConfig) { c.Obstacle.Color = "plaid" }, "obstacle.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q lacks package prefix", err)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestCountdownFromZeroIsValid(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Timing.CountdownFrom = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("countdown_from 0 should be valid: %v", err)
	}
}

func TestValidateApexReach(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Player.JumpForce = 27
	if err := cfg.Validate(); err != nil {
		t.Errorf("reachable apex rejected: %v", err)
	}
	cfg.Player.Height = 60
	cfg.Player.JumpForce = 20 // apex -40, one step reaches -20 after the clamp
	if err := cfg.Validate(); err == nil {
		t.Error("apex beyond one ascent step should be rejected")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.Gravity != 2 {
		t.Errorf("Gravity = %v, expected 2", cfg.Physics.Gravity)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.HasPrefix(err.Error(), "config: ") {
		t.Errorf("error %q lacks package prefix", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 400\n  height: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 200 {
		t.Errorf("Canvas = %vx%v, expected 400x200", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real user or working-directory config.
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != EmbeddedSource {
		t.Errorf("source = %q, expected %q", source, EmbeddedSource)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("fallback config differs from defaults: %+v", cfg)
	}
}

func TestLoadPrefersLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", "runner.yaml")
	if err := os.WriteFile(local, []byte("player:\n  color: blue\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != local {
		t.Errorf("source = %q, expected %q", source, local)
	}
	if cfg.Player.Color != "blue" {
		t.Errorf("Color = %q, expected blue", cfg.Player.Color)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Player.RunSpeed = 7
	cfg.Timing.Move = 40 * time.Millisecond

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "run_speed: 7") {
		t.Errorf("marshalled YAML missing run_speed:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshalled config failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestBounds(t *testing.T) {
	b := DefaultRunnerConfig().Bounds()
	if b.W != 720 || b.H != 360 {
		t.Errorf("Bounds() = %+v, expected 720x360", b)
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
