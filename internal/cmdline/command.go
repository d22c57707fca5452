// Package cmdline provides the interactive command table shared by all
// text-command games: descriptors, tokenizing, dispatch and the help listing.
// It has no knowledge of any particular game; games supply their own tables.
package cmdline

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrUnknownCommand is returned when no command matches the typed keyword.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArgCount is returned when a command gets too few or too many arguments.
	ErrArgCount = errors.New("wrong number of arguments")

	// ErrQuit is returned by a handler to end the command loop.
	ErrQuit = errors.New("quit")
)

// HandlerFunc executes a command. Args excludes the command keyword itself.
type HandlerFunc func(ctx *Context, args []Token) error

// Command describes one entry of a command table.
type Command struct {
	Name  string // Keyword typed by the user
	Param string // Parameter hint shown in help, empty when none
	Help  string // Help text, may span lines; empty hides the command

	MinArgs int
	MaxArgs int // -1 means unbounded

	Handle HandlerFunc
}

// Hidden reports whether the command is left out of the help listing.
func (c Command) Hidden() bool {
	return c.Help == ""
}

// Label returns the left column text: the name, a space and the parameter hint.
func (c Command) Label() string {
	return c.Name + " " + c.Param
}

// Context is handed to every handler.
type Context struct {
	// Out receives everything the command prints.
	Out io.Writer

	// Table is the command table the current line was dispatched from.
	Table []Command

	Logger *log.Logger
}

// Lookup finds a command by case-insensitive name, hidden aliases included.
func Lookup(cmds []Command, name string) (Command, bool) {
	for _, c := range cmds {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Command{}, false
}

// Names returns the names of the visible commands in table order.
func Names(cmds []Command) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c.Hidden() {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}
