package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep generates a wave whose frequency slides linearly from start to end
// over its duration. A constant tone is a sweep with start == end.
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewTone creates a fixed-frequency oscillator
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := s.start + (s.end-s.start)*float64(s.position)/float64(s.duration)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream out linearly over n samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	fireDuration  = 90 * time.Millisecond
	popDuration   = 220 * time.Millisecond
	hitDuration   = 180 * time.Millisecond
	clickDuration = 30 * time.Millisecond
)

// CreateSound builds the streamer for a sound effect at the given volume.
// Unknown ids return nil.
func CreateSound(id SoundID, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch id {
	case SndFire:
		// rising blip
		s = newDecay(NewSweep(440, 1320, fireDuration, WaveSquare, rate), fireDuration, rate)
	case SndPop:
		pop := newDecay(NewSweep(900, 180, popDuration, WaveSine, rate), popDuration, rate)
		click := newDecay(NewTone(1800, clickDuration, WaveSaw, rate), clickDuration, rate)
		s = beep.Seq(newVolume(click, 0.3), pop)
	case SndHit:
		s = newDecay(NewTone(110, hitDuration, WaveSaw, rate), hitDuration, rate)
	case SndClick:
		s = beep.Seq(
			NewTone(1200, clickDuration/2, WaveSquare, rate),
			NewTone(1600, clickDuration/2, WaveSquare, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}
