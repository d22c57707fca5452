package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/text-arcade/internal/platform/shell"
	"github.com/vovakirdan/text-arcade/internal/registry"
	"github.com/vovakirdan/text-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores rover
  arcade scores rover --limit 3
  arcade scores rover --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	title := ""
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}
	if title == "" {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Scores for %s cleared.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if err := shell.WriteScoreTable(out, title, scores); err != nil {
		return err
	}

	if len(scores) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
	return nil
}
