package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator returns a finite tone. A non-zero sweep bends the pitch
// linearly over time.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		f := max(o.freq+o.sweep*t, 0)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	shotDuration      = 90 * time.Millisecond
	explosionDuration = 420 * time.Millisecond
)

// ShotSound is a short descending square blip.
func ShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(1200, -6000, shotDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, shotDuration, 2*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, vol*0.25)
}

// ExplosionSound mixes a noise burst with a falling rumble.
func ExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, 0, explosionDuration, WaveNoise, rate),
		explosionDuration, 3*time.Millisecond, 380*time.Millisecond, rate)
	rumble := NewEnvelope(
		NewOscillator(110, -150, explosionDuration, WaveSine, rate),
		explosionDuration, 5*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5)), vol*0.5)
}

// bassLine is the looped music pattern in Hz, one note per step.
var bassLine = []float64{
	110, 110, 164.81, 110, 146.83, 110, 130.81, 123.47,
	98, 98, 146.83, 98, 130.81, 98, 123.47, 110,
}

// musicGenerator plays bassLine forever with a kick on every other step.
type musicGenerator struct {
	rate  beep.SampleRate
	step  int
	pos   int
	phase float64
}

const musicStep = 200 * time.Millisecond

// NewMusic returns an endless background loop.
func NewMusic(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(&musicGenerator{rate: rate}, vol*0.35)
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	stepLen := g.rate.N(musicStep)
	kickLen := g.rate.N(60 * time.Millisecond)
	for i := range samples {
		if g.pos >= stepLen {
			g.pos = 0
			g.step = (g.step + 1) % len(bassLine)
		}
		freq := bassLine[g.step]
		env := 1 - float64(g.pos)/float64(stepLen)*0.7
		val := 0.3 * env * (2*(g.phase-0.5)*0.6 + math.Sin(2*math.Pi*g.phase)*0.4)

		if g.step%2 == 0 && g.pos < kickLen {
			kenv := 1 - float64(g.pos)/float64(kickLen)
			t := float64(g.pos) / float64(g.rate)
			val += 0.4 * kenv * math.Sin(2*math.Pi*60*(1+2*kenv)*t)
		}

		samples[i][0] = val
		samples[i][1] = val
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
