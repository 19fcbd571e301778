package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two sounds of the same kind (one clock tick)
	MinSoundGap = GameUpdateInterval
)

// Bounce Sound
const (
	BounceSoundDuration = 40 * time.Millisecond
	BounceWallFrequency = 440.0
	BounceFrequency     = 660.0
)

// Break Sound
const (
	BreakSoundDuration  = 120 * time.Millisecond
	BreakSoundFrequency = 880.0
)

// Lose Sound
const (
	LoseSoundDuration       = 600 * time.Millisecond
	LoseSoundStartFrequency = 330.0
	LoseSoundEndFrequency   = 110.0
)

// Cleared Sound
const (
	ClearedNoteDuration = 120 * time.Millisecond
)
