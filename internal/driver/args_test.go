package driver_test

import (
	"testing"

	"github.com/geekysuavo/mattec/internal/driver"
	"github.com/geekysuavo/mattec/lang/emitter"
	"github.com/stretchr/testify/require"
)

func newCompiler() *driver.Compiler {
	return driver.New(driver.EnvConfig{CC: "gcc"})
}

func TestParseArgsCollectsCFlagsVerbatim(t *testing.T) {
	c := newCompiler()
	err := c.ParseArgs([]string{"-g", "-fPIC", "-O2", "-Wall", "-Lfoo", "-Ibar", "prog.m"})
	require.NoError(t, err)
	require.Equal(t, []string{"-g", "-fPIC", "-O2", "-Wall", "-Lfoo", "-Ibar"}, c.CFlags())
	require.Equal(t, []string{"prog.m"}, c.Sources())
}

func TestParseArgsAppendsSearchPath(t *testing.T) {
	c := newCompiler()
	err := c.ParseArgs([]string{"-P/usr/local/matte", "-Pvendor"})
	require.NoError(t, err)
	require.Equal(t, []string{"/usr/local/matte", "vendor"}, c.SearchPath())
}

func TestParseArgsRejectsEmptyPathFlag(t *testing.T) {
	c := newCompiler()
	err := c.ParseArgs([]string{"-P"})
	require.Error(t, err)
}

func TestParseArgsMinusCSetsToCMode(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-c", "prog.m"}))
	require.Equal(t, emitter.ToC, c.Mode())
}

func TestParseArgsMinusOUpgradesDefaultModeToExe(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-o", "a.out", "prog.m"}))
	require.Equal(t, emitter.ToExe, c.Mode())
	require.Equal(t, "a.out", c.Outfile())
}

func TestParseArgsMinusODoesNotOverrideExplicitToC(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-c", "-o", "out.c", "prog.m"}))
	require.Equal(t, emitter.ToC, c.Mode())
}

func TestParseArgsMinusORequiresAnArgument(t *testing.T) {
	c := newCompiler()
	err := c.ParseArgs([]string{"-o"})
	require.Error(t, err)
}

func TestParseArgsRejectsUnsupportedFlag(t *testing.T) {
	c := newCompiler()
	err := c.ParseArgs([]string{"-z"})
	require.Error(t, err)
}

func TestParseArgsCollectsBareNamesAsSources(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"a.m", "-g", "b.m"}))
	require.Equal(t, []string{"a.m", "b.m"}, c.Sources())
}
