package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(NewOscillator(440, 0, 100*time.Millisecond, tc.wave, rate))
			if len(samples) != rate.N(100*time.Millisecond) {
				t.Fatalf("len = %d, expected %d", len(samples), rate.N(100*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v", i, s)
				}
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(NewOscillator(220, 0, 20*time.Millisecond, WaveSquare, 44100))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v, expected ±1", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, rate) // constant 1
	samples := drain(NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(samples) != 100 {
		t.Fatalf("len = %d, expected 100", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", samples[50][0])
	}
	if samples[99][0] >= samples[85][0] {
		t.Errorf("release should fade: %v then %v", samples[85][0], samples[99][0])
	}
}

func TestEffectsAreFinite(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		s    beep.Streamer
		max  time.Duration
	}{
		{"shot", ShotSound(rate, 1), shotDuration},
		{"explosion", ExplosionSound(rate, 1), explosionDuration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(tc.s)
			if len(samples) == 0 || len(samples) > rate.N(tc.max) {
				t.Errorf("len = %d, expected 1..%d", len(samples), rate.N(tc.max))
			}
			for _, s := range samples {
				if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
					t.Fatalf("bad sample %v", s[0])
				}
			}
		})
	}
}

func TestMusicLoops(t *testing.T) {
	m := NewMusic(44100, 1)
	buf := make([][2]float64, 44100)
	for range 5 {
		n, ok := m.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("music stopped: n=%d ok=%v", n, ok)
		}
	}
}

func TestSilentVolume(t *testing.T) {
	samples := drain(ShotSound(44100, 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatalf("muted shot produced %v", s[0])
		}
	}
}

func TestManagerDisabledIsNoop(t *testing.T) {
	m := NewManager(Options{})
	if err := m.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if m.Enabled() {
		t.Fatal("manager with everything off should not open the device")
	}
	m.PlayShot()
	m.PlayExplosion()
	m.StartMusic()
	m.StopMusic()
	m.Close()
}
