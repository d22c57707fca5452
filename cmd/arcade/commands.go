package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/platform/shell"
)

var commandsCmd = &cobra.Command{
	Use:   "commands <game>",
	Short: "Print a game's command reference",
	Long: `Print the same command listing 'help' shows inside the game.

Examples:
  arcade commands rover`,
	Args: cobra.ExactArgs(1),
	RunE: runCommands,
}

func runCommands(_ *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	return cmdline.PrintHelp(shell.New(game, nil, shell.Options{}).Commands())
}
