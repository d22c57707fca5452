package sshd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/text-arcade/internal/games/rover"
)

func TestCRLFWriter(t *testing.T) {
	tests := []struct {
		name   string
		writes []string
		want   string
	}{
		{"plain", []string{"hello"}, "hello"},
		{"bare newline", []string{"a\nb\n"}, "a\r\nb\r\n"},
		{"already crlf", []string{"a\r\nb"}, "a\r\nb"},
		{"split crlf", []string{"a\r", "\nb"}, "a\r\nb"},
		{"split bare", []string{"a", "\n"}, "a\r\n"},
		{"empty write", []string{"", "\n"}, "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewCRLFWriter(&buf)
			for _, s := range tt.writes {
				n, err := w.Write([]byte(s))
				if err != nil {
					t.Fatalf("Write() failed: %v", err)
				}
				if n != len(s) {
					t.Errorf("Write() = %d, expected %d", n, len(s))
				}
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, expected %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewRejectsBadGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.GameID = "nope"
	cfg.Logger = log.New(io.Discard)
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for unknown game")
	}

	cfg = DefaultConfig()
	cfg.Runtime.Difficulty = "brutal"
	cfg.Logger = log.New(io.Discard)
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}

func TestNewAndShutdown(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("Expected the score store to be open")
	}
	if _, err := os.Stat(filepath.Join(dir, "keys")); err != nil {
		t.Errorf("Host key directory not created: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown() should close the store")
	}
}
