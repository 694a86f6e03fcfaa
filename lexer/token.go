package lexer

import "fmt"

// TokenType identifies the kind of a lexical token.
type TokenType int

// Token kinds, in display-table order.
const (
	// Special tokens
	EOI TokenType = iota

	// Operators
	ASSIGN1   // =
	GREATEREQ // =>
	LESSEQ    // =<
	COMPARE   // ==
	ASSIGN2   // :=
	ADD       // +
	SUBTRACT  // -
	MULTIPLY  // *
	DIVIDE    // /
	MODULUS   // %

	// Delimiters
	COLON     // :
	SEMICOLON // ;
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	RBRACE    // }
	LBRACE    // {
	RBRACKET  // ]
	LBRACKET  // [

	// Keywords
	BEGIN
	END
	LOOP
	WHILE
	VOID
	EXIT
	GETTER
	OUTTER
	MAIN
	IF
	THEN
	ASSIGN
	DATA
	PROC

	// Literals
	IDENT
	INTEGER
	STRING
)

var tokens = [...]string{
	EOI: "End_of_input",

	ASSIGN1:   "Op_assign1",
	GREATEREQ: "Op_greatereq",
	LESSEQ:    "Op_lesseq",
	COMPARE:   "Op_compare",
	ASSIGN2:   "Op_assign2",
	ADD:       "Op_add",
	SUBTRACT:  "Op_subtract",
	MULTIPLY:  "Op_multiply",
	DIVIDE:    "Op_divide",
	MODULUS:   "Op_modulus",

	COLON:     "Delim_colin",
	SEMICOLON: "Delim_semicol",
	DOT:       "Delim_dot",
	COMMA:     "Delim_Comma",
	LPAREN:    "Delim_LParent",
	RPAREN:    "Delim_RParent",
	RBRACE:    "Delim_RBrace",
	LBRACE:    "Delim_LBrace",
	RBRACKET:  "Delim_RBracket",
	LBRACKET:  "Delim_LBracket",

	BEGIN:  "Keyword_begin",
	END:    "Keyword_end",
	LOOP:   "Keyword_loop",
	WHILE:  "Keyword_while",
	VOID:   "Keyword_void",
	EXIT:   "Keyword_exit",
	GETTER: "Keyword_getter",
	OUTTER: "Keyword_outter",
	MAIN:   "Keyword_main",
	IF:     "Keyword_if",
	THEN:   "Keyword_then",
	ASSIGN: "Keyword_assign",
	DATA:   "Keyword_data",
	PROC:   "Keyword_proc",

	IDENT:   "Identifier",
	INTEGER: "Integer",
	STRING:  "String",
}

// String returns the display name of the token kind.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return fmt.Sprintf("TokenType(%d)", int(tok))
}

// Position specifies the line and character position of a token.
// Line is 1-based; Column counts characters read on the current line, so the
// first character of a line is at column 1.
type Position struct {
	Line   int
	Column int
}

// Value is the payload carried by INTEGER, IDENT and STRING tokens.
// It is either an Int or a Text.
type Value interface {
	value()
}

// Int is the numeric payload of an INTEGER token.
type Int int64

// Text is the payload of an IDENT or STRING token.
type Text string

func (Int) value()  {}
func (Text) value() {}

// Token is a classified lexical unit. The payload is fixed by the kind:
// INTEGER tokens hold an Int, IDENT and STRING tokens hold a Text and every
// other kind holds nothing.
type Token struct {
	TokenType TokenType
	Position  Position
	val       Value
}

func newToken(tt TokenType, pos Position) Token {
	return Token{TokenType: tt, Position: pos}
}

func intToken(n int64, pos Position) Token {
	return Token{TokenType: INTEGER, Position: pos, val: Int(n)}
}

func textToken(tt TokenType, text string, pos Position) Token {
	if tt != IDENT && tt != STRING {
		return newToken(tt, pos)
	}
	return Token{TokenType: tt, Position: pos, val: Text(text)}
}

// Value returns the token payload, or nil for kinds without one.
func (t Token) Value() Value {
	return t.val
}

// Int returns the numeric value of an INTEGER token.
func (t Token) Int() (int64, bool) {
	n, ok := t.val.(Int)
	return int64(n), ok
}

// Text returns the text of an IDENT or STRING token.
func (t Token) Text() (string, bool) {
	s, ok := t.val.(Text)
	return string(s), ok
}

func (t Token) String() string {
	switch v := t.val.(type) {
	case Int:
		return fmt.Sprintf("%s(%d)", t.TokenType, int64(v))
	case Text:
		return fmt.Sprintf("%s(%q)", t.TokenType, string(v))
	}
	return t.TokenType.String()
}
