package lexer

import (
	"errors"
	"strconv"
)

// scanChar scans a character constant. The opening quote has been consumed.
func (s *Scanner) scanChar(pos Position) (Token, *Error) {
	c := s.cur
	n := c.ch
	switch c.ch {
	case '\'':
		return Token{}, fail(pos, ErrEmptyChar, "gettok: empty character constant")
	case '\\':
		switch c.advance() {
		case 'n':
			n = '\n'
		case '\\':
			n = '\\'
		default:
			return Token{}, fail(pos, ErrUnknownEscape, "gettok: unknown escape sequence \\%c", c.ch)
		}
	}
	if c.advance() != '\'' {
		return Token{}, fail(pos, ErrMultiChar, "multi-character constant")
	}
	c.advance()
	return intToken(int64(n), pos), nil
}

// scanString scans a string literal. The lookahead is the opening quote.
func (s *Scanner) scanString(pos Position) (Token, *Error) {
	c := s.cur
	quote := c.ch
	s.text.Reset()

	for c.advance() != quote {
		switch c.ch {
		case '\n':
			return Token{}, fail(pos, ErrEOLInString, "EOL in string")
		case eof:
			return Token{}, fail(pos, ErrEOFInString, "EOF in string")
		}
		s.text.WriteRune(c.ch)
	}
	c.advance()
	return textToken(STRING, s.text.String(), pos), nil
}

// scanIdentOrInt consumes a run of letters, digits and underscores and
// classifies it as a keyword, an identifier or an integer.
func (s *Scanner) scanIdentOrInt(pos Position) (Token, *Error) {
	c := s.cur
	s.text.Reset()
	isNumber := true

	for isLetter(c.ch) || isDigit(c.ch) || c.ch == '_' {
		s.text.WriteRune(c.ch)
		if !isDigit(c.ch) {
			isNumber = false
		}
		c.advance()
	}
	if s.text.Len() == 0 {
		return Token{}, fail(pos, ErrUnrecognizedChar, "gettok: unrecognized character (%d) '%c'", c.ch, c.ch)
	}

	text := s.text.String()
	if !isDigit(rune(text[0])) {
		return textToken(Lookup(text), text, pos), nil
	}
	if !isNumber {
		return Token{}, fail(pos, ErrInvalidNumber, "invalid number: %s", text)
	}

	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, fail(pos, ErrNumberRange, "Number exceeds maximum value")
		}
		return Token{}, fail(pos, ErrInvalidNumber, "invalid number: %s", text)
	}
	return intToken(n, pos), nil
}
