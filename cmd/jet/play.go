package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jet-defender/internal/audio"
	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/games/jet"
	"github.com/vovakirdan/jet-defender/internal/platform/driver"
	"github.com/vovakirdan/jet-defender/internal/platform/feed"
	"github.com/vovakirdan/jet-defender/internal/platform/gui"
	"github.com/vovakirdan/jet-defender/internal/platform/tui"
	"github.com/vovakirdan/jet-defender/internal/settings"
	"github.com/vovakirdan/jet-defender/internal/storage"
)

var (
	flagGUI        bool
	flagDifficulty string
	flagFeed       string
	flagFeedOrigin []string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jet Defender",
	Long: `Start a game in the terminal, or in a desktop window with --gui.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Fire (hold for continuous fire)
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit
  Mouse drag       - Steer (terminal: any row; window: lower part)

Difficulty options:
  easy   - Two extra lives, slower and sparser enemies
  normal - The default tuning
  hard   - One life less, faster and denser enemies
  fixed  - Normal tuning that never levels up

Each difficulty keeps its own leaderboard.

Examples:
  jet play
  jet play --difficulty hard
  jet play --gui
  jet play --feed :8090
  jet play --feed :8090 --feed-origin "localhost:*"
  jet play --config ./my-jet.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFeed, "feed", "", "Serve the live HUD feed over websocket on this address")
	playCmd.Flags().StringSliceVar(&flagFeedOrigin, "feed-origin", nil, "Extra browser origins allowed on the feed, e.g. localhost:*")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound and music for this run")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	// The terminal frontend owns the TTY, so logs only go to --log-file.
	var fallback io.Writer = io.Discard
	if flagGUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger("jet", fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	sound := openAudio(logger)
	defer sound.Close()

	opts := driver.Options{
		Board:  preset.Board(),
		Player: os.Getenv("USER"),
		Rand:   core.NewSimpleRNG(0),
		Sound:  sound,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game works without a leaderboard.
		logger.Warn("could not open scores database", "error", err)
		if flagGUI || flagLogFile == "" {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		}
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagFeed != "" {
		hub := feed.NewHub(logger, flagFeedOrigin...)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := hub.ListenAndServe(ctx, flagFeed); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("feed stopped", "error", err)
			}
		}()
		opts.Feed = hub
	}

	game := jet.New(cfg, core.SystemClock{}, core.NewSimpleRNG(flagSeed))
	d := driver.New(game, opts)
	logger.Debug("starting", "board", preset.Board(), "gui", flagGUI, "seed", flagSeed)

	if flagGUI {
		return gui.Run(d, cfg.Window)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.Run(d, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
}

// openAudio applies the saved settings and opens the speaker. Failures are
// logged and leave a silent manager.
func openAudio(logger *log.Logger) *audio.Manager {
	prefs, err := settings.Open()
	if err != nil {
		logger.Warn("settings are not persistent", "error", err)
	}
	if err := prefs.Load(); err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}

	opts := prefs.Get().AudioOptions()
	if flagMute {
		opts.Sound = false
		opts.Music = false
	}

	m := audio.NewManager(opts)
	if err := m.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return m
}
