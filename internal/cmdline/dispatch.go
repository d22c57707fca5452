package cmdline

import (
	"fmt"
)

// Dispatch tokenizes line, finds the matching command in cmds and runs it.
// An empty line is a no-op.
func Dispatch(ctx *Context, cmds []Command, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0].Str
	cmd, ok := Lookup(cmds, name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	args := tokens[1:]
	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		return fmt.Errorf("%s: %w (usage: %s)", cmd.Name, ErrArgCount, cmd.Label())
	}

	if ctx.Logger != nil {
		ctx.Logger.Debug("dispatch", "command", cmd.Name, "args", len(args))
	}

	ctx.Table = cmds
	if cmd.Handle == nil {
		return nil
	}
	return cmd.Handle(ctx, args)
}
