package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/engine"
)

// SoundManager manages all game audio
// Every effect is a short finite streamer added to one mixer
// Audio is optional: without a successful Initialize every Play is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Last start time per sound, throttles bursts (several blocks in one tick)
	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device silent
	sm.initialized = false
}

// SetMuted enables or disables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts kind unless muted, uninitialized or played within MinSoundGap
// Returns whether the sound was queued
func (sm *SoundManager) Play(kind SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.allow(kind, sm.now()) {
		return false
	}

	s := newSound(kind)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// allow applies the per-sound throttle and records the start time; caller holds mu
func (sm *SoundManager) allow(kind SoundType, now time.Time) bool {
	if kind < 0 || kind >= soundTypeCount {
		return false
	}
	last := sm.lastPlayed[kind]
	if !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[kind] = now
	return true
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventWallBounce,
		engine.EventPaddleBounce,
		engine.EventBlockDestroyed,
		engine.EventRoundLost,
		engine.EventWallCleared,
	}
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	if kind, ok := soundFor(ev.Type); ok {
		sm.Play(kind)
	}
}

// soundFor maps a game event to its effect
func soundFor(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventWallBounce:
		return SoundWallBounce, true
	case engine.EventPaddleBounce:
		return SoundPaddleBounce, true
	case engine.EventBlockDestroyed:
		return SoundBreak, true
	case engine.EventRoundLost:
		return SoundLose, true
	case engine.EventWallCleared:
		return SoundCleared, true
	default:
		return 0, false
	}
}
