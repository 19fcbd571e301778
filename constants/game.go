package constants

import "time"

// Game Loop Timing
const (
	// FrameRate is the target simulation rate (ticks per second)
	FrameRate = 25

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = time.Second / FrameRate

	// KeyReleaseDelay is how long a direction key stays held without a repeat
	// Terminals report presses only, so release is inferred from repeat silence
	// Must exceed the typical autorepeat start delay (~250-500ms)
	KeyReleaseDelay = 550 * time.Millisecond
)

// Board Defaults
const (
	BoardWidth  = 640
	BoardHeight = 480
)

// Block Layout Defaults
const (
	BlockSpacing = 5
	BlockWidth   = 50
	BlockHeight  = 10
	BlockRows    = 6

	// BlockHue is the HSL hue shared by every row (red)
	BlockHue = 0

	// BlockSaturationTop is the saturation of row 0, each row below loses BlockSaturationStep
	BlockSaturationTop  = 0.80
	BlockSaturationStep = 0.10
	BlockLightness      = 0.50
)

// Ball Defaults
const (
	BallRadius = 10
	BallDX     = 3
	BallDY     = 3
)

// Paddle Defaults
const (
	PaddleWidth  = 60
	PaddleHeight = 8
	PaddleSpeed  = 6

	// PaddleLift is the paddle height multiple kept between paddle top and board bottom
	PaddleLift = 1.5
)

// Rules Defaults
const (
	InitialLives  = 1
	ScorePerBlock = 1
)
