// jet is Jet Defender: a vertical shooter for the terminal, the desktop and
// SSH sessions.
//
// Usage:
//
//	jet play                 - Play in the terminal (--gui for a window)
//	jet scores               - Show the leaderboards
//	jet serve                - Start an SSH server for remote play
//	jet settings             - Show or change sound settings
//	jet config               - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.jet/scores.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jet",
	Short: "Jet Defender - shoot down the descending swarm",
	Long: `Jet Defender is a vertical shooter. Steer the craft along the bottom
of the screen, shoot the enemies coming down and pick up the power-ups
they drop.

Available commands:
  play      - Play in the terminal or a desktop window
  scores    - View the leaderboards
  serve     - Start SSH server for remote play
  settings  - Show or change sound settings
  config    - Print the effective configuration

Examples:
  jet play
  jet play --difficulty hard
  jet play --gui
  jet serve --ssh :2222
  jet scores --board jet:hard`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger writes to --log-file when set, otherwise to fallback. The
// returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the game configuration and applies a difficulty preset.
func loadConfig(difficulty string) (config.JetConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.JetConfig{}, "", err
	}
	cfg, err := config.LoadJet(flagConfig)
	if err != nil {
		return config.JetConfig{}, "", err
	}
	cfg = config.ApplyPreset(cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.JetConfig{}, "", err
	}
	return cfg, preset, nil
}
