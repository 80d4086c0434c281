package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jet-defender/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change sound settings",
	Long: `Without flags, print the saved settings. With flags, change and save
them. Volumes are clamped to 0..1.

Examples:
  jet settings
  jet settings --music=false
  jet settings --volume 0.5 --music-volume 0.2`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().Bool("sound", true, "Enable sound effects")
	settingsCmd.Flags().Float64("volume", 0.8, "Sound effect volume (0..1)")
	settingsCmd.Flags().Bool("music", true, "Enable background music")
	settingsCmd.Flags().Float64("music-volume", 0.35, "Music volume (0..1)")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	m, err := settings.Open()
	if err != nil {
		return err
	}
	if err := m.Load(); err != nil {
		fmt.Printf("Warning: %v (using defaults)\n", err)
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("sound") {
		v, _ := flags.GetBool("sound")
		m.SetSoundEnabled(v)
		changed = true
	}
	if flags.Changed("volume") {
		v, _ := flags.GetFloat64("volume")
		m.SetSoundVolume(v)
		changed = true
	}
	if flags.Changed("music") {
		v, _ := flags.GetBool("music")
		m.SetMusicEnabled(v)
		changed = true
	}
	if flags.Changed("music-volume") {
		v, _ := flags.GetFloat64("music-volume")
		m.SetMusicVolume(v)
		changed = true
	}

	if changed {
		if err := m.Save(); err != nil {
			return err
		}
	}

	s := m.Get()
	fmt.Printf("sound:        %v\n", s.SoundEnabled)
	fmt.Printf("volume:       %.2f\n", s.SoundVolume)
	fmt.Printf("music:        %v\n", s.MusicEnabled)
	fmt.Printf("music-volume: %.2f\n", s.MusicVolume)
	return nil
}
