package render

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nof-sh/lexscan/lexer"
)

// Source yields tokens one at a time. *lexer.Scanner implements it.
type Source interface {
	Next() (lexer.Token, error)
}

// Renderer formats a single token to its output.
type Renderer interface {
	Render(tok lexer.Token) error
}

// Run pulls tokens from src and renders each one in scan order, stopping after
// the end-of-input token. A scan error is returned unchanged so the caller can
// print it as the diagnostic; a render error is wrapped.
func Run(src Source, r Renderer, log logrus.FieldLogger) error {
	count := 0
	for {
		tok, err := src.Next()
		if err != nil {
			log.WithField("tokens", count).Debug("scan failed")
			return err
		}

		log.WithFields(logrus.Fields{
			"line": tok.Position.Line,
			"col":  tok.Position.Column,
			"kind": tok.TokenType,
		}).Debug("token")

		if err := r.Render(tok); err != nil {
			return fmt.Errorf("render %s at %d:%d: %w", tok.TokenType, tok.Position.Line, tok.Position.Column, err)
		}
		count++

		if tok.TokenType == lexer.EOI {
			log.WithField("tokens", count).Debug("end of input")
			return nil
		}
	}
}
