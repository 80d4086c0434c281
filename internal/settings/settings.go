// Package settings persists user preferences (sound and music) between runs.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jet-defender/internal/audio"
)

// AppName is the gdata application name; it decides the storage directory.
const AppName = "jet-defender"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the user's audio preferences.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
}

// Default returns the settings used on first launch.
func Default() Settings {
	return Settings{
		SoundEnabled: true,
		SoundVolume:  0.8,
		MusicEnabled: true,
		MusicVolume:  0.35,
	}
}

// AudioOptions converts the settings for the audio manager.
func (s Settings) AudioOptions() audio.Options {
	return audio.Options{
		Sound:       s.SoundEnabled,
		SoundVolume: s.SoundVolume,
		Music:       s.MusicEnabled,
		MusicVolume: s.MusicVolume,
	}
}

// Manager loads and saves settings. A nil gdata manager keeps everything in
// memory.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open creates a manager backed by the platform data directory.
func Open() (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil), fmt.Errorf("settings: open storage: %w", err)
	}
	return NewManager(store), nil
}

// NewManager creates a manager over store. Saved settings are not loaded
// until Load.
func NewManager(store *gdata.Manager) *Manager {
	return &Manager{store: store, settings: Default()}
}

// Persistent reports whether settings survive the process.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads the saved settings. A missing file leaves the defaults; a
// broken one resets to defaults and returns the error.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	m.settings = loaded
	return nil
}

// Save writes the current settings. Without storage it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetSoundEnabled toggles sound effects. Call Save to persist.
func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

// SetSoundVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetSoundVolume(v float64) {
	m.settings.SoundVolume = clampVolume(v)
}

// SetMusicEnabled toggles background music.
func (m *Manager) SetMusicEnabled(enabled bool) {
	m.settings.MusicEnabled = enabled
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.settings.MusicVolume = clampVolume(v)
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
