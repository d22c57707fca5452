// arcade is a text arcade: command-driven games played at a prompt,
// locally or over SSH.
//
// Usage:
//
//	arcade list               - List available games
//	arcade play <game>        - Play a game in this terminal
//	arcade commands <game>    - Print a game's command help
//	arcade serve              - Start SSH server for remote play
//	arcade scores <game>      - Show high scores for a game
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible worlds
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/text-arcade/internal/games/rover"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Text Arcade - Play command-driven games in your terminal",
	Long: `Text Arcade hosts games you play by typing commands at a prompt.
Type 'help' inside a game to see what it understands.

Available commands:
  list      - Show all available games
  play      - Play a specific game
  commands  - Print a game's command reference
  serve     - Start SSH server for remote play
  scores    - View high scores

Examples:
  arcade list
  arcade play rover
  arcade play rover --seed 42 --difficulty hard
  arcade commands rover
  arcade serve --ssh :2222
  arcade scores rover`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
