package scanner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/geekysuavo/mattec/internal/filetest"
	"github.com/geekysuavo/mattec/lang/scanner"
	"github.com/geekysuavo/mattec/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []scanner.TokenAndValue {
	t.Helper()
	fs := token.NewFileSet()
	toks, el := scanner.ScanString(fs, "(string)", src)
	require.NoError(t, el.Err())
	return toks
}

func tokens(toks []scanner.TokenAndValue) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tv := range toks {
		out[i] = tv.Token
	}
	return out
}

func TestTransposeVsString(t *testing.T) {
	// A' -> IDENT, HTR, EOL, EOF
	got := tokens(scanAll(t, "A'\n"))
	assert.Equal(t, []token.Token{token.IDENT, token.HTR, token.EOL, token.EOF}, got)

	// 'hello' at the start of an expression -> STRING, EOL, EOF
	got2 := tokens(scanAll(t, "'hello'\n"))
	assert.Equal(t, []token.Token{token.STRING, token.EOL, token.EOF}, got2)
}

func TestTransposeAfterBracket(t *testing.T) {
	got := tokens(scanAll(t, "A(1)'\n"))
	want := []token.Token{
		token.IDENT, token.LPAREN, token.INT, token.RPAREN, token.HTR, token.EOL, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestNumericLiterals(t *testing.T) {
	toks := scanAll(t, "123 1.5 1.5e10 2i 3.0j\n")
	require.Len(t, toks, 6)

	assert.Equal(t, token.INT, toks[0].Token)
	assert.EqualValues(t, 123, toks[0].Value.Int)

	assert.Equal(t, token.FLOAT, toks[1].Token)
	assert.InDelta(t, 1.5, toks[1].Value.Float, 1e-9)

	assert.Equal(t, token.FLOAT, toks[2].Token)
	assert.InDelta(t, 1.5e10, toks[2].Value.Float, 1.0)

	assert.Equal(t, token.FLOAT, toks[3].Token)
	assert.True(t, toks[3].Value.Complex)
	assert.InDelta(t, 2.0, toks[3].Value.Float, 1e-9)

	assert.Equal(t, token.FLOAT, toks[4].Token)
	assert.True(t, toks[4].Value.Complex)
}

func TestCompoundAssignAndIncrement(t *testing.T) {
	got := tokens(scanAll(t, "x += 1\nx++\n"))
	want := []token.Token{
		token.IDENT, token.PLUSEQ, token.INT, token.EOL,
		token.IDENT, token.PLUSPLUS, token.EOL,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestElementWiseOperators(t *testing.T) {
	got := tokens(scanAll(t, "A .* B ./ C .^ D .\\ E\n"))
	want := []token.Token{
		token.IDENT, token.DOTSTAR, token.IDENT, token.DOTSLASH, token.IDENT,
		token.DOTCARET, token.IDENT, token.DOTBACKSL, token.IDENT, token.EOL, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestComments(t *testing.T) {
	got := tokens(scanAll(t, "x = 1 % trailing comment\ny = 2\n"))
	want := []token.Token{
		token.IDENT, token.EQ, token.INT, token.EOL,
		token.IDENT, token.EQ, token.INT, token.EOL,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestBlockComment(t *testing.T) {
	got := tokens(scanAll(t, "x = 1; %{ a block\n comment %} y = 2\n"))
	want := []token.Token{
		token.IDENT, token.EQ, token.INT, token.SEMI,
		token.IDENT, token.EQ, token.INT, token.EOL,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLineContinuation(t *testing.T) {
	got := tokens(scanAll(t, "x = 1 + ...\n2\n"))
	want := []token.Token{
		token.IDENT, token.EQ, token.INT, token.PLUS, token.INT, token.EOL, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestKeywords(t *testing.T) {
	got := tokens(scanAll(t, "for i = 1:10\nend\n"))
	want := []token.Token{
		token.FOR, token.IDENT, token.EQ, token.INT, token.COLON, token.INT, token.EOL,
		token.END, token.EOL, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestMalformedStringReportsOnce(t *testing.T) {
	fs := token.NewFileSet()
	_, el := scanner.ScanString(fs, "(string)", "\"abc\n\"def\n")
	require.Error(t, el.Err())
	assert.Len(t, el, 1, "only the first scanner error should be reported")
}

func TestIllegalCharacter(t *testing.T) {
	fs := token.NewFileSet()
	toks, el := scanner.ScanString(fs, "(string)", "x = #\n")
	require.Error(t, el.Err())
	got := tokens(toks)
	assert.Contains(t, got, token.ILLEGAL)
}

// TestScanFixtures runs every file under testdata/in through ScanFiles,
// the file-reading path TestTransposeVsString and friends never
// exercise (they go through ScanString instead): each fixture must
// tokenize without error, and the last token of every statement-ending
// file is EOF.
func TestScanFixtures(t *testing.T) {
	srcDir := filepath.Join("testdata", "in")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".m") {
		t.Run(fi.Name(), func(t *testing.T) {
			_, toksPerFile, err := scanner.ScanFiles(context.Background(), filepath.Join(srcDir, fi.Name()))
			require.NoError(t, err)
			require.Len(t, toksPerFile, 1)

			toks := toksPerFile[0]
			require.NotEmpty(t, toks)
			assert.Equal(t, token.EOF, toks[len(toks)-1].Token)
		})
	}
}
