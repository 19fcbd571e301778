package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-breakout/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)

	// Output gain applied to every effect
	effectGain = 0.25

	// Attack and release ramps, seconds
	attackSec  = 0.005
	releaseSec = 0.03
)

// Envelope shapes a finite streamer with a linear attack and release
// The wrapped streamer is read for at most total samples
type Envelope struct {
	s     beep.Streamer
	pos   int
	total int
	gain  float64
}

// NewEnvelope limits s to d and fades it in and out
func NewEnvelope(s beep.Streamer, d time.Duration, gain float64) *Envelope {
	return &Envelope{
		s:     beep.Take(sampleRate.N(d), s),
		total: sampleRate.N(d),
		gain:  gain,
	}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))

	for i := 0; i < n; i++ {
		amp := e.gain
		if e.pos < attack {
			amp *= float64(e.pos) / float64(attack)
		}
		if left := e.total - e.pos; left < release {
			amp *= float64(left) / float64(release)
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.s.Err()
}

// SweepGenerator is a sine whose frequency glides linearly from start to end
type SweepGenerator struct {
	start, end float64
	pos        int
	samples    int
	phase      float64
}

// NewSweepGenerator creates a glide lasting d
func NewSweepGenerator(start, end float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		start:   start,
		end:     end,
		samples: sampleRate.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.start + (g.end-g.start)*progress

		sample := math.Sin(2 * math.Pi * g.phase)
		g.phase += freq / float64(sampleRate)
		if g.phase >= 1 {
			g.phase--
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// tone returns an enveloped sine of freq lasting d
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return NewEnvelope(sine, d, effectGain)
}

// clearedArpeggio is a rising major arpeggio ending an octave up
func clearedArpeggio() beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, f := range notes {
		parts = append(parts, tone(f, constants.ClearedNoteDuration))
		parts = append(parts, beep.Silence(sampleRate.N(constants.ClearedNoteDuration/4)))
	}
	return beep.Seq(parts...)
}

// newSound builds a fresh finite streamer for kind
func newSound(kind SoundType) beep.Streamer {
	switch kind {
	case SoundWallBounce:
		return tone(constants.BounceWallFrequency, constants.BounceSoundDuration)
	case SoundPaddleBounce:
		return tone(constants.BounceFrequency, constants.BounceSoundDuration)
	case SoundBreak:
		return tone(constants.BreakSoundFrequency, constants.BreakSoundDuration)
	case SoundLose:
		sweep := NewSweepGenerator(constants.LoseSoundStartFrequency, constants.LoseSoundEndFrequency, constants.LoseSoundDuration)
		return NewEnvelope(sweep, constants.LoseSoundDuration, effectGain)
	case SoundCleared:
		return clearedArpeggio()
	default:
		return nil
	}
}
