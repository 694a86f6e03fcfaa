package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "defaults", args: nil, want: options{format: "text"}},
		{name: "input only", args: []string{"in.src"}, want: options{format: "text", input: "in.src"}},
		{name: "input and output", args: []string{"in.src", "out.lex"}, want: options{format: "text", input: "in.src", output: "out.lex"}},
		{name: "flags", args: []string{"-format", "bson", "-v", "-color", "in.src"}, want: options{format: "bson", verbose: true, color: true, input: "in.src"}},
		{name: "bad format", args: []string{"-format", "xml"}, wantErr: true},
		{name: "too many args", args: []string{"a", "b", "c"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.src")
	out := filepath.Join(dir, "prog.lex")
	require.NoError(t, os.WriteFile(in, []byte("proc main /* entry */ { n := '\\n'; }\n"), 0644))

	log, _ := test.NewNullLogger()
	code := run(&options{format: "text", input: in, output: out}, log)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"    1      1 Keyword_proc   \n"+
		"    1      6 Keyword_main   \n"+
		"    1     23 Delim_LBrace   \n"+
		"    1     25 Identifier      n\n"+
		"    1     27 Op_assign2     \n"+
		"    1     30 Integer            10\n"+
		"    1     34 Delim_semicol  \n"+
		"    1     36 Delim_RBrace   \n"+
		"    2      1 End_of_input   \n", string(got))
}

func TestRun_ScanErrorKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.src")
	out := filepath.Join(dir, "bad.lex")
	require.NoError(t, os.WriteFile(in, []byte("x 3x"), 0644))

	log, _ := test.NewNullLogger()
	code := run(&options{format: "text", input: in, output: out}, log)
	assert.Equal(t, 1, code)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "    1      1 Identifier      x\n", string(got))
}

func TestRun_MissingInput(t *testing.T) {
	log, _ := test.NewNullLogger()
	code := run(&options{format: "text", input: filepath.Join(t.TempDir(), "missing.src")}, log)
	assert.Equal(t, 1, code)
}
