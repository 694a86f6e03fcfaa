package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nof-sh/lexscan/lexer"
	"github.com/nof-sh/lexscan/render"
)

type failingRenderer struct {
	after int
	seen  int
}

var errDiskFull = errors.New("disk full")

func (r *failingRenderer) Render(tok lexer.Token) error {
	if r.seen == r.after {
		return errDiskFull
	}
	r.seen++
	return nil
}

func TestRun(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	var buf bytes.Buffer
	err := render.Run(lexer.NewScanner(strings.NewReader("main { }")), render.NewText(&buf), log)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "End_of_input   \n"))

	entries := hook.AllEntries()
	require.Len(t, entries, 5)
	assert.Equal(t, "token", entries[0].Message)
	assert.Equal(t, lexer.MAIN, entries[0].Data["kind"])
	assert.Equal(t, "end of input", hook.LastEntry().Message)
	assert.Equal(t, 4, hook.LastEntry().Data["tokens"])
}

func TestRun_ScanError(t *testing.T) {
	log, _ := test.NewNullLogger()

	var buf bytes.Buffer
	err := render.Run(lexer.NewScanner(strings.NewReader("a \"open")), render.NewText(&buf), log)
	require.ErrorIs(t, err, lexer.ErrEOFInString)
	assert.EqualError(t, err, "(1,3) error: EOF in string")

	// Tokens before the error are still rendered.
	assert.Equal(t, "    1      1 Identifier      a\n", buf.String())
}

func TestRun_RenderError(t *testing.T) {
	log, _ := test.NewNullLogger()

	err := render.Run(lexer.NewScanner(strings.NewReader("a b")), &failingRenderer{after: 1}, log)
	require.ErrorIs(t, err, errDiskFull)
	assert.EqualError(t, err, "render Identifier at 1:3: disk full")
}
