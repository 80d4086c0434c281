// Package audio plays synthesized sound effects and background music.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Options controls what the manager plays and how loud.
type Options struct {
	Sound       bool
	SoundVolume float64 // 0..1
	Music       bool
	MusicVolume float64 // 0..1
}

// Manager owns the speaker and the mixer. A manager that was never
// initialized, or whose sound is off, silently ignores every call.
type Manager struct {
	mu          sync.Mutex
	opts        Options
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewManager creates a manager. Nothing is opened until Init.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts, mixer: &beep.Mixer{}}
}

// Init opens the audio device. With both sound and music disabled it does
// nothing.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || (!m.opts.Sound && !m.opts.Music) {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled reports whether the device is open.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Options returns the current options.
func (m *Manager) Options() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts
}

// PlayShot plays the shot sound.
func (m *Manager) PlayShot() {
	m.play(func(vol float64) beep.Streamer { return ShotSound(sampleRate, vol) })
}

// PlayExplosion plays the explosion sound.
func (m *Manager) PlayExplosion() {
	m.play(func(vol float64) beep.Streamer { return ExplosionSound(sampleRate, vol) })
}

func (m *Manager) play(build func(vol float64) beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.opts.Sound {
		return
	}
	s := build(m.opts.SoundVolume)
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic restarts the background loop from the beginning.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.opts.Music {
		return
	}
	speaker.Lock()
	if m.music != nil {
		m.music.Streamer = nil
	}
	m.music = &beep.Ctrl{Streamer: NewMusic(sampleRate, m.opts.MusicVolume)}
	m.mixer.Add(m.music)
	speaker.Unlock()
}

// StopMusic pauses the background loop.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = true
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	m.music = nil
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
