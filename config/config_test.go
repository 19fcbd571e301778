package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := Default()

	if got := cfg.BlockCols(); got != 11 {
		t.Errorf("BlockCols() = %d, want 11", got)
	}
	if got := cfg.ColOffset(); got != 20 {
		t.Errorf("ColOffset() = %v, want 20", got)
	}
	if got := cfg.BallStartX(); got != 20 {
		t.Errorf("BallStartX() = %v, want 20", got)
	}
	if got := cfg.BallStartY(); got != 110 {
		t.Errorf("BallStartY() = %v, want 110", got)
	}
	if got := cfg.PaddleY(); got != 468 {
		t.Errorf("PaddleY() = %v, want 468", got)
	}
	if got := cfg.TickInterval(); got != 40*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 40ms", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Board.Width = 0 }, ErrInvalidBoard},
		{"negative height", func(c *Config) { c.Board.Height = -1 }, ErrInvalidBoard},
		{"zero rows", func(c *Config) { c.Blocks.Rows = 0 }, ErrInvalidBlocks},
		{"negative spacing", func(c *Config) { c.Blocks.Spacing = -1 }, ErrInvalidBlocks},
		{"no columns", func(c *Config) { c.Board.Width = 50; c.Ball.Radius = 2; c.Paddle.Width = 10 }, ErrNoColumns},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, ErrInvalidBall},
		{"still ball", func(c *Config) { c.Ball.DX = 0; c.Ball.DY = 0 }, ErrInvalidBall},
		{"paddle wider than board", func(c *Config) { c.Paddle.Width = 700 }, ErrInvalidPaddle},
		{"paddle above serve", func(c *Config) { c.Board.Height = 100 }, ErrInvalidPaddle},
		{"zero score", func(c *Config) { c.Rules.ScorePerBlock = 0 }, ErrInvalidRules},
		{"zero fps", func(c *Config) { c.Timing.FPS = 0 }, ErrInvalidTiming},
		{"sub-nanosecond tick", func(c *Config) { c.Timing.FPS = 2_000_000_000 }, ErrInvalidTiming},
		{"negative key release", func(c *Config) { c.Timing.KeyReleaseDelay = -time.Millisecond }, ErrInvalidTiming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	src := `
board:
  width: 800
blocks:
  rows: 4
rules:
  lives: 3
timing:
  fps: 30
  key_release_delay: 300ms
`
	cfg, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Board.Width != 800 {
		t.Errorf("Board.Width = %v, want 800", cfg.Board.Width)
	}
	if cfg.Board.Height != 480 {
		t.Errorf("Board.Height = %v, want default 480", cfg.Board.Height)
	}
	if cfg.Blocks.Rows != 4 || cfg.Blocks.Width != 50 {
		t.Errorf("Blocks = %+v, want rows 4 width 50", cfg.Blocks)
	}
	if cfg.Rules.Lives != 3 {
		t.Errorf("Rules.Lives = %d, want 3", cfg.Rules.Lives)
	}
	if cfg.Timing.FPS != 30 || cfg.Timing.KeyReleaseDelay != 300*time.Millisecond {
		t.Errorf("Timing = %+v", cfg.Timing)
	}
}

func TestParseKeys(t *testing.T) {
	src := `
keys:
  j: left
  l: right
  q: none
`
	cfg, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Keys) != 3 || cfg.Keys["j"] != "left" || cfg.Keys["q"] != "none" {
		t.Errorf("Keys = %v", cfg.Keys)
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty document should yield defaults, got %+v", cfg)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("board:\n  depth: 3\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseValidates(t *testing.T) {
	_, err := Parse(strings.NewReader("board:\n  width: 40\n"))
	if err == nil {
		t.Fatal("expected validation error for a 40 wide board")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  dx: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ball.DX != 4 || cfg.Ball.DY != 3 {
		t.Errorf("Ball = %+v, want dx 4 dy 3", cfg.Ball)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	def, err := Load("")
	if err != nil || !reflect.DeepEqual(def, Default()) {
		t.Errorf("Load(\"\") = %+v, %v", def, err)
	}
}
