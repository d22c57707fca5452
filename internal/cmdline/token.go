package cmdline

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnterminatedQuote is returned when a quoted token is not closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Token is one word of an input line.
type Token struct {
	Str   string
	Num   int  // Parsed value when IsNum is set
	IsNum bool // Str is a base-10 integer
}

func newToken(s string) Token {
	t := Token{Str: s}
	if n, err := strconv.Atoi(s); err == nil {
		t.Num = n
		t.IsNum = true
	}
	return t
}

// Tokenize splits a line into tokens on blanks.
// Single quotes keep everything literally. Double quotes keep blanks and
// allow \" and \\ escapes; any other backslash is kept as is. Outside quotes
// a backslash escapes the next character.
func Tokenize(line string) ([]Token, error) {
	var (
		tokens   []Token
		cur      strings.Builder
		inToken  bool
		inSingle bool
		inDouble bool
		escaped  bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			if inDouble && ch != '"' && ch != '\\' {
				cur.WriteByte('\\')
			}
			cur.WriteByte(ch)
			escaped = false
			continue
		}

		switch {
		case ch == '\\' && !inSingle:
			escaped = true
			inToken = true
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			inToken = true
		case ch == '"' && !inSingle:
			inDouble = !inDouble
			inToken = true
		case (ch == ' ' || ch == '\t') && !inSingle && !inDouble:
			if inToken {
				tokens = append(tokens, newToken(cur.String()))
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteByte(ch)
			inToken = true
		}
	}

	if inSingle || inDouble {
		return nil, ErrUnterminatedQuote
	}
	if escaped {
		// Trailing backslash is taken literally.
		cur.WriteByte('\\')
	}
	if inToken {
		tokens = append(tokens, newToken(cur.String()))
	}
	return tokens, nil
}
