package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/core"
	"github.com/vovakirdan/text-arcade/internal/platform/shell"
	"github.com/vovakirdan/text-arcade/internal/registry"
	"github.com/vovakirdan/text-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game at an interactive prompt.

Type 'help' (or '?') for the game's commands, 'new [seed]' to restart
and 'quit' to leave. Ctrl+D also leaves. Input may be piped in, one
command per line.

Difficulty options:
  easy    - More fuel, wider view, fewer rocks
  normal  - The config as written
  hard    - Less fuel, narrower view, bigger fuel bonus
  fixed   - Same as normal

Examples:
  arcade play rover
  arcade play rover --difficulty easy
  arcade play rover --seed 42
  arcade play rover --config ./my-rover.yaml
  echo "status" | arcade play rover`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with scores")
}

// runtimeConfig builds the game factory config from the global and play flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}

func createGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return registry.Create(gameID, runtimeConfig())
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sh := shell.New(game, store, shell.Options{
		Out:    cmd.OutOrStdout(),
		Player: flagPlayer,
		Logger: logger,
	})

	in, err := openInput(sh.Commands())
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return sh.Run(ctx, in)
}

// openInput uses a line editor on a terminal and plain lines otherwise.
func openInput(cmds []cmdline.Command) (shell.LineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return shell.NewScannerReader(os.Stdin, nil, ""), nil
	}

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			history = filepath.Join(dir, "history")
		}
	}

	return shell.NewReadline(shell.ReadlineConfig{
		Prompt:      "> ",
		HistoryFile: history,
		Commands:    cmdline.Names(cmds),
	})
}
