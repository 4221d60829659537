package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutfileForCModeReplacesDotM(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-c", "prog.m"}))
	require.Equal(t, "prog.c", c.OutfileFor(".c", "matte.c"))
}

func TestOutfileForCModeAppendsWhenNoDotM(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-c", "prog.mat"}))
	require.Equal(t, "prog.mat.c", c.OutfileFor(".c", "matte.c"))
}

func TestOutfileForCModeFallsBackWithNoSources(t *testing.T) {
	c := newCompiler()
	require.Equal(t, "matte.c", c.OutfileFor(".c", "matte.c"))
}

func TestOutfileForExeModeStripsDotMWithoutAppending(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"prog.m"}))
	require.Equal(t, "prog", c.OutfileFor("", "matte"))
}

func TestOutfileForExeModeAppendsWhenNoDotM(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"prog.txt"}))
	require.Equal(t, "prog.txt.exe", c.OutfileFor(".exe", "matte"))
}

func TestOutfileForHonorsExplicitDashO(t *testing.T) {
	c := newCompiler()
	require.NoError(t, c.ParseArgs([]string{"-o", "named", "prog.m"}))
	require.Equal(t, "named", c.OutfileFor("", "matte"))
}
