package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by a LineReader when the user presses Ctrl+C.
var ErrInterrupt = errors.New("interrupted")

// LineReader yields one input line per call and io.EOF at the end of input.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// scannerReader reads plain lines, for pipes, scripts and tests.
type scannerReader struct {
	in     io.Reader
	sc     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewScannerReader reads lines from in. When out is non-nil the prompt is
// written before every read. Close closes in if it is an io.Closer.
func NewScannerReader(in io.Reader, out io.Writer, prompt string) LineReader {
	return &scannerReader{in: in, sc: bufio.NewScanner(in), out: out, prompt: prompt}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.out != nil && r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *scannerReader) Close() error {
	if c, ok := r.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadlineConfig configures an interactive line editor.
type ReadlineConfig struct {
	Prompt      string
	HistoryFile string   // Empty disables history persistence
	Commands    []string // Completion candidates for the first word

	// Remote terminal, e.g. an SSH session. When Stdin is nil the process
	// terminal is used.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Width  func() int
}

type readlineReader struct {
	rl   *readline.Instance
	once sync.Once
	err  error
}

// NewReadline creates a line editor with history and command completion.
func NewReadline(cfg ReadlineConfig) (LineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Commands))
	for _, name := range cfg.Commands {
		items = append(items, readline.PcItem(name))
	}

	rc := &readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	}

	if cfg.Stdin != nil {
		// The remote side owns the terminal; there is no local tty to switch.
		rc.Stdin = io.NopCloser(cfg.Stdin)
		rc.Stdout = cfg.Stdout
		rc.Stderr = cfg.Stderr
		if rc.Stderr == nil {
			rc.Stderr = cfg.Stdout
		}
		rc.FuncIsTerminal = func() bool { return true }
		rc.FuncMakeRaw = func() error { return nil }
		rc.FuncExitRaw = func() error { return nil }
		rc.FuncGetWidth = cfg.Width
		if rc.FuncGetWidth == nil {
			rc.FuncGetWidth = func() int { return 80 }
		}
		rc.ForceUseInteractive = true
	}

	rl, err := readline.NewEx(rc)
	if err != nil {
		return nil, fmt.Errorf("shell: cannot start line editor: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return line, ErrInterrupt
	}
	return line, err
}

// Close may be called more than once, e.g. on cancellation and by the owner.
func (r *readlineReader) Close() error {
	r.once.Do(func() { r.err = r.rl.Close() })
	return r.err
}
