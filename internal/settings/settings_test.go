package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStore(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	store, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open() = %v", err)
	}
	return store
}

func TestInMemoryManager(t *testing.T) {
	m := NewManager(nil)
	if m.Persistent() {
		t.Error("nil store should not be persistent")
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if m.Get() != Default() {
		t.Errorf("Get() = %+v, expected defaults", m.Get())
	}

	m.SetSoundEnabled(false)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if m.Get().SoundEnabled {
		t.Error("in-memory change lost")
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t, "jet_settings_test")

	m := NewManager(store)
	m.SetSoundEnabled(false)
	m.SetSoundVolume(0.25)
	m.SetMusicEnabled(false)
	m.SetMusicVolume(0.5)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	other := NewManager(store)
	if err := other.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := Settings{SoundEnabled: false, SoundVolume: 0.25, MusicEnabled: false, MusicVolume: 0.5}
	if other.Get() != want {
		t.Errorf("loaded %+v, expected %+v", other.Get(), want)
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	store := openTestStore(t, "jet_settings_empty")
	m := NewManager(store)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if m.Get() != Default() {
		t.Errorf("Get() = %+v, expected defaults", m.Get())
	}
}

func TestLoadBrokenResetsToDefaults(t *testing.T) {
	store := openTestStore(t, "jet_settings_broken")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp() = %v", err)
	}

	m := NewManager(store)
	m.SetMusicVolume(0.1)
	if err := m.Load(); err == nil {
		t.Fatal("Load() should fail on broken YAML")
	}
	if m.Get() != Default() {
		t.Errorf("Get() = %+v, expected defaults after a failed load", m.Get())
	}
}

func TestVolumeClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
	}

	m := NewManager(nil)
	for _, tc := range tests {
		m.SetSoundVolume(tc.in)
		m.SetMusicVolume(tc.in)
		if got := m.Get(); got.SoundVolume != tc.want || got.MusicVolume != tc.want {
			t.Errorf("volume(%v) = %v/%v, expected %v", tc.in, got.SoundVolume, got.MusicVolume, tc.want)
		}
	}
}

func TestAudioOptions(t *testing.T) {
	opts := Settings{SoundEnabled: true, SoundVolume: 0.3, MusicVolume: 0.2}.AudioOptions()
	if !opts.Sound || opts.SoundVolume != 0.3 || opts.Music || opts.MusicVolume != 0.2 {
		t.Errorf("AudioOptions() = %+v", opts)
	}
}
