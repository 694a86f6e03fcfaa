package render

import (
	"fmt"
	"io"

	"github.com/nof-sh/lexscan/lexer"
)

// Text writes one fixed-layout line per token:
//
//	<line:5>  <col:5> <kind:15>[ payload]
//
// Integers are printed as "  %4d", identifiers as " text" and strings as
// ` "text"`.
type Text struct {
	w io.Writer
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Render writes tok as a single line.
func (r *Text) Render(tok lexer.Token) error {
	line := fmt.Sprintf("%5d  %5d %-15.15s", tok.Position.Line, tok.Position.Column, tok.TokenType)
	switch v := tok.Value().(type) {
	case lexer.Int:
		line += fmt.Sprintf("  %4d", int64(v))
	case lexer.Text:
		if tok.TokenType == lexer.STRING {
			line += fmt.Sprintf(" \"%s\"", string(v))
		} else {
			line += " " + string(v)
		}
	}
	_, err := io.WriteString(r.w, line+"\n")
	return err
}
