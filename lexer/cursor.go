package lexer

import (
	"bufio"
	"io"
)

const eof = rune(-1)

// cursor owns the single character of lookahead over the source.
type cursor struct {
	reader *bufio.Reader
	line   int
	col    int
	ch     rune
	err    error // first non-EOF read failure
}

func newCursor(r io.Reader) *cursor {
	return &cursor{
		reader: bufio.NewReader(r),
		line:   1,
		ch:     ' ',
	}
}

// advance reads the next rune into the lookahead and returns it.
// Once the source is exhausted it keeps returning eof.
func (c *cursor) advance() rune {
	c.col++
	if c.ch == eof {
		return eof
	}

	ch, _, err := c.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		ch = eof
	}
	c.ch = ch

	if ch == '\n' {
		c.line++
		c.col = 0
	}
	return ch
}

func (c *cursor) position() Position {
	return Position{Line: c.line, Column: c.col}
}
