package driver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/geekysuavo/mattec/lang/emitter"
	"github.com/mna/mainer"
)

const binName = "mattec"

// Compiler accumulates one compile run's configuration as ParseArgs walks
// the command line, then Run drives it through the pipeline and one of
// the three output modes. It plays the role of the original matte.c's
// stack-allocated Compiler object, minus the zone-managed AST/source
// lists this repo keeps as plain Go slices instead.
type Compiler struct {
	env EnvConfig

	cflags     []string
	searchPath []string
	sources    []string

	mode    emitter.Mode // defaults to ToMem, matching compiler_new's COMPILE_TO_MEM
	outfile string
}

// New constructs a Compiler with env already loaded from the process
// environment (MATTEPATH, MATTEC_CC). MATTEPATH is split on ":" into the
// initial search path, exactly as compiler_new splits pathdata with a
// string_split(pathstr, ":"); -P flags extend it further in ParseArgs.
func New(env EnvConfig) *Compiler {
	c := &Compiler{env: env, mode: emitter.ToMem}
	if env.Path != "" {
		c.searchPath = strings.Split(env.Path, ":")
	}
	return c
}

// CFlags returns the host compiler flags accumulated by ParseArgs, in
// the order they were seen.
func (c *Compiler) CFlags() []string { return c.cflags }

// SearchPath returns the -P/MATTEPATH directories, in the order they
// apply when resolving a bare source filename.
func (c *Compiler) SearchPath() []string { return c.searchPath }

// Sources returns the source filenames collected from bare command-line
// arguments, in command-line order.
func (c *Compiler) Sources() []string { return c.sources }

// Mode returns the currently configured output mode.
func (c *Compiler) Mode() emitter.Mode { return c.mode }

// Outfile returns the output filename set by -o, or "" if none was given.
func (c *Compiler) Outfile() string { return c.outfile }

// Main is the full entry point: parse args, run the pipeline, write
// run-level failures to stdio.Stderr, and return the process exit code.
// Exit code 0 on success, 1 otherwise, per spec.md §6.
func Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	env, err := LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: invalid environment: %s\n", binName, err)
		return mainer.Failure
	}

	c := New(env)
	if len(args) > 1 {
		if err := c.ParseArgs(args[1:]); err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
			return mainer.Failure
		}
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.Run(ctx, stdio); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return mainer.Failure
	}
	return mainer.Success
}

// Run executes the configured compile: the scan/parse/resolve/emit
// pipeline, followed by whichever of compileToC/compileToExe/compileToMem
// matches c.mode.
func (c *Compiler) Run(ctx context.Context, stdio mainer.Stdio) error {
	code, err := c.compile(ctx)
	if err != nil {
		return err
	}

	switch c.mode {
	case emitter.ToC:
		return c.compileToC(code)
	case emitter.ToExe:
		return c.compileToExe(ctx, stdio, code)
	default:
		return c.compileToMem(ctx, stdio, code)
	}
}
