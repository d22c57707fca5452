package cmdline

import (
	"io"
	"os"
	"strings"
)

// helpIndent is written before every label.
const helpIndent = "    "

// ColumnWidth returns the length of the longest help-bearing label
// (name, a space, parameter hint), or floor if that is larger.
func ColumnWidth(cmds []Command, floor int) int {
	width := floor
	for _, c := range cmds {
		if c.Hidden() {
			continue
		}
		if l := len(c.Name) + 1 + len(c.Param); l > width {
			width = l
		}
	}
	return width
}

// RenderHelp writes the help listing for cmds to w.
//
// Each visible command gets its label padded to width after a four space
// indent, then a space and the first help line. Further help lines start on
// their own line, indented by width+5 spaces so they line up with the first.
// Hidden commands produce no output.
func RenderHelp(w io.Writer, cmds []Command, width int) error {
	var sb strings.Builder
	cont := strings.Repeat(" ", width+5)

	for _, c := range cmds {
		if c.Hidden() {
			continue
		}

		sb.Reset()
		sb.WriteString(helpIndent)
		label := c.Label()
		sb.WriteString(label)
		if pad := width - len(label); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteByte(' ')

		for i, line := range strings.Split(c.Help, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
				sb.WriteString(cont)
			}
			sb.WriteString(line)
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintHelp writes the help listing for cmds to standard output.
func PrintHelp(cmds []Command) error {
	return RenderHelp(os.Stdout, cmds, ColumnWidth(cmds, 0)+1)
}

// Help is the handler behind the "help" command. It lists the table the
// command was dispatched from.
func Help(ctx *Context, _ []Token) error {
	width := ColumnWidth(ctx.Table, 0) + 1
	//nolint:errcheck // Output errors surface on the next read
	RenderHelp(ctx.Out, ctx.Table, width)
	return nil
}
