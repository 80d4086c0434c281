package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jet-defender/internal/platform/tui"
	"github.com/vovakirdan/jet-defender/internal/storage"
)

var (
	flagBoard string
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboards",
	Long: `Browse the leaderboards in an interactive table, or print one with
--plain. Every difficulty has its own board: jet (normal), jet:easy,
jet:hard and jet:fixed.

Examples:
  jet scores
  jet scores --board jet:hard
  jet scores --plain --limit 5
  jet scores --board jet:easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagBoard, "board", "jet", "Leaderboard to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the board instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the board")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flagBoard); err != nil {
			return err
		}
		fmt.Printf("Cleared %s\n", tui.BoardTitle(flagBoard))
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagBoard, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(flagBoard, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", tui.BoardTitle(flagBoard))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %s\n", i+1, e.Score, e.Level, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(flagBoard); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d   Best: %d   Best level: %d\n", stats.GamesCount, stats.HighScore, stats.BestLevel)
	}
	return nil
}
