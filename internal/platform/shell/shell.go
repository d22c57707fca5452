// Package shell runs the interactive command loop for a registered game:
// it reads lines, dispatches them through the game's command table plus the
// shell's own commands, and records finished games in the score store.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/registry"
	"github.com/vovakirdan/text-arcade/internal/storage"
)

// Options configures a Shell.
type Options struct {
	Out    io.Writer   // Defaults to os.Stdout
	Player string      // Name stored with scores
	Logger *log.Logger // Defaults to a discarding logger
}

// Shell hosts one game session.
type Shell struct {
	game   registry.Game
	store  *storage.Store // nil when scores are unavailable
	out    io.Writer
	player string
	logger *log.Logger
	styles styles

	// recorded is set once the current game's result has been handled.
	recorded bool
}

type styles struct {
	title lipgloss.Style
	err   lipgloss.Style
	note  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		err:   r.NewStyle().Foreground(lipgloss.Color("9")),
		note:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// New creates a shell for the given game. store may be nil.
func New(game registry.Game, store *storage.Store, opts Options) *Shell {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Shell{
		game:   game,
		store:  store,
		out:    opts.Out,
		player: opts.Player,
		logger: opts.Logger,
		styles: newStyles(opts.Out),
	}
}

// Commands returns the active table: the game's commands, then the shell's.
func (s *Shell) Commands() []cmdline.Command {
	gameCmds := s.game.Commands()
	cmds := make([]cmdline.Command, 0, len(gameCmds)+6)
	cmds = append(cmds, gameCmds...)
	cmds = append(cmds,
		cmdline.Command{Name: "help", Help: "Show this help.", Handle: cmdline.Help},
		cmdline.Command{Name: "?", Handle: cmdline.Help},
		cmdline.Command{Name: "scores", Help: "Show the high score table.", Handle: s.cmdScores},
		cmdline.Command{Name: "new", Param: "[seed]", Help: "Start a new game.\nOptional seed makes the world reproducible.", MaxArgs: 1, Handle: s.cmdNew},
		cmdline.Command{Name: "quit", Help: "Leave the game.", Handle: cmdQuit},
		cmdline.Command{Name: "q", Handle: cmdQuit},
	)
	return cmds
}

type readResult struct {
	line string
	err  error
}

// Run reads and executes lines until quit, end of input or ctx is done.
// A cancelled ctx also interrupts a pending read by closing in.
func (s *Shell) Run(ctx context.Context, in LineReader) error {
	fmt.Fprintln(s.out, s.styles.title.Render(s.game.Title()))
	fmt.Fprintln(s.out, s.styles.note.Render("Type 'help' for a list of commands."))

	cctx := &cmdline.Context{Out: s.out, Logger: s.logger}
	cmds := s.Commands()

	lines := make(chan readResult, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		go func() {
			line, err := in.ReadLine()
			lines <- readResult{line, err}
		}()

		var line string
		var err error
		select {
		case <-ctx.Done():
			// Closing the reader unblocks the pending ReadLine
			//nolint:errcheck // Shutting down anyway
			in.Close()
			return ctx.Err()
		case r := <-lines:
			line, err = r.line, r.err
		}

		switch {
		case errors.Is(err, ErrInterrupt):
			fmt.Fprintln(s.out, s.styles.note.Render("Type 'quit' to leave."))
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("shell: read failed: %w", err)
		}

		err = cmdline.Dispatch(cctx, cmds, line)
		if errors.Is(err, cmdline.ErrQuit) {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}
		if err != nil {
			s.logger.Debug("command failed", "line", line, "error", err)
			fmt.Fprintln(s.out, s.styles.err.Render("error: "+err.Error()))
		}

		s.checkGameOver()
	}
}

// checkGameOver reports and records a finished game once.
func (s *Shell) checkGameOver() {
	state := s.game.State()
	if !state.GameOver || s.recorded {
		return
	}
	s.recorded = true

	fmt.Fprintln(s.out, s.styles.title.Render(
		fmt.Sprintf("Game over! Final score: %d in %d turns.", state.Score, state.Turn)))

	if s.store == nil || state.Score <= 0 {
		return
	}

	best, err := s.store.HighScore(s.game.ID())
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
	}

	_, err = s.store.SaveScore(storage.ScoreEntry{
		GameID: s.game.ID(),
		Player: s.player,
		Score:  state.Score,
		Turns:  state.Turn,
	})
	if err != nil {
		s.logger.Warn("could not save score", "error", err)
		return
	}
	s.logger.Info("score saved", "game", s.game.ID(), "player", s.player, "score", state.Score)

	if state.Score > best {
		fmt.Fprintln(s.out, "New high score!")
	}
	fmt.Fprintln(s.out, s.styles.note.Render("Type 'new' to play again."))
}

func (s *Shell) cmdNew(ctx *cmdline.Context, args []cmdline.Token) error {
	var seed int64
	if len(args) == 1 {
		if !args[0].IsNum {
			return fmt.Errorf("new: seed must be a number, got %q", args[0].Str)
		}
		seed = int64(args[0].Num)
	}

	s.game.Reset(seed)
	s.recorded = false

	if seeded, ok := s.game.(interface{ Seed() int64 }); ok {
		fmt.Fprintf(ctx.Out, "New game started (seed %d).\n", seeded.Seed())
		return nil
	}
	fmt.Fprintln(ctx.Out, "New game started.")
	return nil
}

func (s *Shell) cmdScores(ctx *cmdline.Context, _ []cmdline.Token) error {
	if s.store == nil {
		fmt.Fprintln(ctx.Out, "Scores are not available.")
		return nil
	}

	scores, err := s.store.TopScores(s.game.ID(), 10)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	return WriteScoreTable(ctx.Out, s.game.Title(), scores)
}

func cmdQuit(*cmdline.Context, []cmdline.Token) error {
	return cmdline.ErrQuit
}

// WriteScoreTable prints a ranked score listing.
func WriteScoreTable(w io.Writer, title string, scores []storage.ScoreEntry) error {
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		_, err := fmt.Fprintln(w, "No scores recorded yet.")
		return err
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Turns", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Format("2006-01-02 15:04")
		}
		if _, err := fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-12s  %s\n", i+1, e.Score, e.Turns, player, date); err != nil {
			return err
		}
	}
	return nil
}
