package render

import (
	"io"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nof-sh/lexscan/lexer"
)

// Record is the BSON document written for each token.
type Record struct {
	Line   int     `bson:"line"`
	Column int     `bson:"col"`
	Kind   string  `bson:"kind"`
	Int    *int64  `bson:"int,omitempty"`
	Text   *string `bson:"text,omitempty"`
}

// NewRecord converts tok into its BSON document form.
func NewRecord(tok lexer.Token) Record {
	rec := Record{
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
		Kind:   tok.TokenType.String(),
	}
	switch v := tok.Value().(type) {
	case lexer.Int:
		n := int64(v)
		rec.Int = &n
	case lexer.Text:
		s := string(v)
		rec.Text = &s
	}
	return rec
}

// BSON writes each token as one BSON document. The output is a plain
// concatenation of documents, the layout used by mongodump and bsondump.
type BSON struct {
	w io.Writer
}

// NewBSON returns a BSON renderer writing to w.
func NewBSON(w io.Writer) *BSON {
	return &BSON{w: w}
}

// Render encodes tok and writes the document.
func (r *BSON) Render(tok lexer.Token) error {
	doc, err := bson.Marshal(NewRecord(tok))
	if err != nil {
		return err
	}
	_, err = r.w.Write(doc)
	return err
}
