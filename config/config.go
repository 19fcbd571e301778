// Package config holds the immutable session configuration shared by every entity
// A Config is built once (defaults, optionally overlaid by a YAML file), validated,
// and passed by pointer into the ball, paddle, wall and game constructors
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-breakout/constants"
)

// Validation errors, wrapped with the offending values
var (
	ErrInvalidBoard  = errors.New("invalid board dimensions")
	ErrInvalidBlocks = errors.New("invalid block layout")
	ErrNoColumns     = errors.New("board too narrow for a single block column")
	ErrInvalidBall   = errors.New("invalid ball settings")
	ErrInvalidPaddle = errors.New("invalid paddle settings")
	ErrInvalidRules  = errors.New("invalid rules")
	ErrInvalidTiming = errors.New("invalid timing")
)

// Config is the full game configuration
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Blocks BlockConfig  `yaml:"blocks"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`

	// Keys overrides default key bindings, key name to action name
	// Resolved by the input package; an action of "none" unbinds the key
	Keys map[string]string `yaml:"keys"`
}

// BoardConfig defines the simulation bounds
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlockConfig defines the wall grid
type BlockConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	Rows    int     `yaml:"rows"`
}

// BallConfig defines the ball served at each round start
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
}

// PaddleConfig defines the player paddle
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// RulesConfig defines scoring and lives
type RulesConfig struct {
	Lives         int `yaml:"lives"`
	ScorePerBlock int `yaml:"score_per_block"`
}

// TimingConfig defines the tick rate and input timing
type TimingConfig struct {
	FPS             int           `yaml:"fps"`
	KeyReleaseDelay time.Duration `yaml:"key_release_delay"`
}

// Default returns the classic 640x480 layout
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  constants.BoardWidth,
			Height: constants.BoardHeight,
		},
		Blocks: BlockConfig{
			Width:   constants.BlockWidth,
			Height:  constants.BlockHeight,
			Spacing: constants.BlockSpacing,
			Rows:    constants.BlockRows,
		},
		Ball: BallConfig{
			Radius: constants.BallRadius,
			DX:     constants.BallDX,
			DY:     constants.BallDY,
		},
		Paddle: PaddleConfig{
			Width:  constants.PaddleWidth,
			Height: constants.PaddleHeight,
			Speed:  constants.PaddleSpeed,
		},
		Rules: RulesConfig{
			Lives:         constants.InitialLives,
			ScorePerBlock: constants.ScorePerBlock,
		},
		Timing: TimingConfig{
			FPS:             constants.FrameRate,
			KeyReleaseDelay: constants.KeyReleaseDelay,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
// An empty path returns the validated defaults
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, rejecting unknown keys
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a playable board
func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidBoard, c.Board.Width, c.Board.Height)
	}

	b := c.Blocks
	if b.Width <= 0 || b.Height <= 0 || b.Spacing < 0 || b.Rows <= 0 {
		return fmt.Errorf("%w: %vx%v spacing %v rows %d", ErrInvalidBlocks, b.Width, b.Height, b.Spacing, b.Rows)
	}
	if c.BlockCols() < 1 {
		return fmt.Errorf("%w: width %v, block pitch %v", ErrNoColumns, c.Board.Width, b.Width+b.Spacing)
	}

	if c.Ball.Radius <= 0 || c.Ball.Radius*2 >= c.Board.Width {
		return fmt.Errorf("%w: radius %v", ErrInvalidBall, c.Ball.Radius)
	}
	if c.Ball.DX == 0 && c.Ball.DY == 0 {
		return fmt.Errorf("%w: zero velocity", ErrInvalidBall)
	}

	p := c.Paddle
	if p.Width <= 0 || p.Height <= 0 || p.Speed < 0 || p.Width >= c.Board.Width {
		return fmt.Errorf("%w: %vx%v speed %v", ErrInvalidPaddle, p.Width, p.Height, p.Speed)
	}
	if c.PaddleY() <= c.BallStartY() {
		return fmt.Errorf("%w: paddle row %v above ball serve row %v", ErrInvalidPaddle, c.PaddleY(), c.BallStartY())
	}

	if c.Rules.ScorePerBlock <= 0 {
		return fmt.Errorf("%w: score per block %d", ErrInvalidRules, c.Rules.ScorePerBlock)
	}

	if c.Timing.FPS <= 0 || c.Timing.KeyReleaseDelay < 0 {
		return fmt.Errorf("%w: fps %d, key release %v", ErrInvalidTiming, c.Timing.FPS, c.Timing.KeyReleaseDelay)
	}
	if c.TickInterval() <= 0 {
		return fmt.Errorf("%w: fps %d leaves no time per tick", ErrInvalidTiming, c.Timing.FPS)
	}

	return nil
}

// BlockCols returns how many block columns fit across the board
func (c *Config) BlockCols() int {
	pitch := c.Blocks.Width + c.Blocks.Spacing
	if pitch <= 0 {
		return 0
	}
	return int(math.Floor(c.Board.Width / pitch))
}

// ColOffset returns the horizontal offset applied to every block column
func (c *Config) ColOffset() float64 {
	return math.Mod(c.Board.Width, c.Blocks.Width) / 2
}

// BallStartX returns the serve x coordinate
func (c *Config) BallStartX() float64 {
	return c.Ball.Radius * 2
}

// BallStartY returns the serve y coordinate, just below the wall
func (c *Config) BallStartY() float64 {
	return (c.Blocks.Height+c.Blocks.Spacing)*float64(c.Blocks.Rows) + c.Ball.Radius*2
}

// PaddleY returns the fixed paddle row
func (c *Config) PaddleY() float64 {
	return c.Board.Height - c.Paddle.Height*constants.PaddleLift
}

// TickInterval returns the duration of one simulation tick
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.FPS)
}
