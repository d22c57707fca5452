package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/core"
	"github.com/vovakirdan/text-arcade/internal/platform/shell"
	"github.com/vovakirdan/text-arcade/internal/registry"
	"github.com/vovakirdan/text-arcade/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "  rover  Rover\n") {
		t.Errorf("list output missing rover:\n%s", out)
	}
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "rover", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore(storage.ScoreEntry{GameID: "rover", Player: "ana", Score: 42, Turns: 9})
	store.Close()

	out, err = execute(t, "scores", "rover", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "ana") || !strings.Contains(out, "Best: 42") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	out, err = execute(t, "scores", "rover", "--db", db, "--clear")
	if err != nil {
		t.Fatalf("scores --clear failed: %v", err)
	}
	if out != "Scores for Rover cleared.\n" {
		t.Errorf("Unexpected output %q", out)
	}
	flagScoresClear = false
}

func TestUnknownGame(t *testing.T) {
	if _, err := execute(t, "scores", "nope"); err == nil {
		t.Error("Expected error for unknown game")
	}
	if _, err := execute(t, "list", "--log-level", "loud"); err == nil {
		t.Error("Expected error for bad log level")
	}
	flagLogLevel = "warn"
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() failed: %v", err)
	}

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	w.Close()
	return <-done
}

func TestCommandsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var runErr error
	got := captureStdout(t, func() {
		_, runErr = execute(t, "commands", "rover")
	})
	if runErr != nil {
		t.Fatalf("commands failed: %v", runErr)
	}

	game, err := registry.Create("rover", core.DefaultConfig())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	table := shell.New(game, nil, shell.Options{}).Commands()
	var want bytes.Buffer
	if err := cmdline.RenderHelp(&want, table, cmdline.ColumnWidth(table, 0)+1); err != nil {
		t.Fatalf("RenderHelp() failed: %v", err)
	}

	if got != want.String() {
		t.Errorf("commands output =\n%s\nexpected\n%s", got, want.String())
	}
	if !strings.Contains(got, "    go <x> <y>") || strings.Contains(got, "    ? ") {
		t.Errorf("Unexpected listing:\n%s", got)
	}

	if _, err := execute(t, "commands", "nope"); err == nil {
		t.Error("Expected error for unknown game")
	}
}

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2200", "ssh localhost -p 2200"},
		{"arcade.example.com:4000", "ssh arcade.example.com -p 4000"},
		{"[::]:2201", "ssh localhost -p 2201"},
		{"10.0.0.5:22", "ssh 10.0.0.5"},
		{"bogus", "ssh localhost"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
