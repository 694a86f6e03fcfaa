package lexer

import (
	"bytes"
	"io"
)

// Scanner represents a lexical scanner. It is not safe for concurrent use.
type Scanner struct {
	cur  *cursor
	text bytes.Buffer // scratch for identifier, number and string bodies
	err  error
}

// NewScanner returns a new instance of Scanner.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		cur: newCursor(reader),
	}
}

// Next returns the next token. It returns EOI at end of input, and keeps
// returning EOI on later calls. A lexical error ends the scan: the same
// *Error is returned from every later call.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	tok, err := s.scan()
	if err != nil {
		if s.cur.err != nil {
			err = fail(err.Pos, ErrRead, "%v", s.cur.err)
		}
		s.err = err
		return Token{}, err
	}
	if tok.TokenType == EOI && s.cur.err != nil {
		s.err = fail(tok.Position, ErrRead, "%v", s.cur.err)
		return Token{}, s.err
	}
	return tok, nil
}

func (s *Scanner) scan() (Token, *Error) {
	c := s.cur
	for {
		// Skip whitespace.
		for isSpace(c.ch) {
			c.advance()
		}

		pos := c.position()
		switch c.ch {
		case '{':
			c.advance()
			return newToken(LBRACE, pos), nil
		case '}':
			c.advance()
			return newToken(RBRACE, pos), nil
		case '(':
			c.advance()
			return newToken(LPAREN, pos), nil
		case ')':
			c.advance()
			return newToken(RPAREN, pos), nil
		case '[':
			c.advance()
			return newToken(LBRACKET, pos), nil
		case ']':
			c.advance()
			return newToken(RBRACKET, pos), nil
		case '+':
			c.advance()
			return newToken(ADD, pos), nil
		case '-':
			c.advance()
			return newToken(SUBTRACT, pos), nil
		case '*':
			c.advance()
			return newToken(MULTIPLY, pos), nil
		case '%':
			c.advance()
			return newToken(MODULUS, pos), nil
		case ';':
			c.advance()
			return newToken(SEMICOLON, pos), nil
		case ',':
			c.advance()
			return newToken(COMMA, pos), nil
		case '.':
			c.advance()
			return newToken(DOT, pos), nil

		case '/':
			c.advance()
			if c.ch != '*' {
				return newToken(DIVIDE, pos), nil
			}
			if err := s.skipComment(pos); err != nil {
				return Token{}, err
			}
			continue

		case '\'':
			c.advance()
			return s.scanChar(pos)
		case '"':
			return s.scanString(pos)

		case ':':
			c.advance()
			return s.follow(pos, COLON, alt{'=', ASSIGN2})
		case '=':
			c.advance()
			return s.follow(pos, ASSIGN1,
				alt{'>', GREATEREQ},
				alt{'<', LESSEQ},
				alt{'=', COMPARE},
			)

		case eof:
			return newToken(EOI, pos), nil
		}

		return s.scanIdentOrInt(pos)
	}
}

// skipComment consumes a comment body up to and including the closing */.
// The opening / has been consumed and the lookahead is the *.
func (s *Scanner) skipComment(pos Position) *Error {
	c := s.cur
	c.advance()
	for {
		switch c.ch {
		case '*':
			if c.advance() == '/' {
				c.advance()
				return nil
			}
		case eof:
			return fail(pos, ErrEOFInComment, "EOF in comment")
		default:
			c.advance()
		}
	}
}

// alt is a two-character operator candidate: the follow character and the
// kind produced when it is present.
type alt struct {
	ch  rune
	tok TokenType
}

// follow resolves a one or two character operator with a single character of
// lookahead. If no alternative matches, ifno is returned and the lookahead is
// left unconsumed; an ifno of EOI means the first character cannot stand alone.
func (s *Scanner) follow(pos Position, ifno TokenType, alts ...alt) (Token, *Error) {
	c := s.cur
	for _, a := range alts {
		if c.ch == a.ch {
			c.advance()
			return newToken(a.tok, pos), nil
		}
	}
	if ifno == EOI {
		return Token{}, fail(pos, ErrUnrecognizedChar, "follow: unrecognized character '%c' (%d)", c.ch, c.ch)
	}
	return newToken(ifno, pos), nil
}

// ScanAll scans r to the end and returns every token including the final EOI.
// On error the tokens scanned so far are returned with it.
func ScanAll(r io.Reader) ([]Token, error) {
	s := NewScanner(r)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.TokenType == EOI {
			return toks, nil
		}
	}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
