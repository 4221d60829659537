package driver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mna/mainer"
)

// OutfileFor derives the output filename when -o was not given, stripping
// a trailing ".m" from the last source file and appending suffix (or
// just stripping, when suffix is empty, matching compile_to_exe's
// "remove .m, don't append .exe" case), falling back to fallback when no
// source files were given.
func (c *Compiler) OutfileFor(suffix, fallback string) string {
	if c.outfile != "" {
		return c.outfile
	}
	if len(c.sources) == 0 {
		return fallback
	}

	last := c.sources[len(c.sources)-1]
	if strings.HasSuffix(last, ".m") {
		base := strings.TrimSuffix(last, ".m")
		return base + suffix
	}
	return last + suffix
}

// compileToC writes the generated translation unit directly to the
// inferred (or -o'd) .c file, grounded on compile_to_c.
func (c *Compiler) compileToC(code string) error {
	fname := c.OutfileFor(".c", "matte.c")

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to open '%s' for writing: %w", fname, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", code); err != nil {
		return fmt.Errorf("unable to write '%s': %w", fname, err)
	}
	return nil
}

// compileToExe writes code to a temp .c file, shells out to the host
// compiler to link it against the matte runtime, and leaves the
// resulting binary at the inferred (or -o'd) path. Grounded on
// compile_to_exe's mkstemps+"gcc %s %s -o %s -lmatte"+system() sequence.
func (c *Compiler) compileToExe(ctx context.Context, stdio mainer.Stdio, code string) error {
	fname := c.OutfileFor("", "matte")

	tmp, err := c.writeTempSource(code)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	args := append(append([]string{}, c.cflags...), tmp, "-o", fname, "-lmatte")
	return c.runToolchain(ctx, stdio, args)
}

// compileToMem builds the program the same way compileToExe does, into a
// throwaway temp binary, then runs it immediately and removes it
// afterward -- preserving compile_to_mem's "never leaves output behind,
// runs what was just compiled" behavior without depending on cgo.
// See DESIGN.md: Go's plugin package only loads plugins built by `go
// build -buildmode=plugin`, not arbitrary C shared objects, so dlopen'ing
// the emitted program in-process the way compile_to_mem's dlopen/dlsym
// call does is not reproducible from pure Go; executing the linked
// binary as a child process is the idiomatic substitute.
func (c *Compiler) compileToMem(ctx context.Context, stdio mainer.Stdio, code string) error {
	tmpSrc, err := c.writeTempSource(code)
	if err != nil {
		return err
	}
	defer os.Remove(tmpSrc)

	tmpBin, err := os.CreateTemp("", "matte*.bin")
	if err != nil {
		return fmt.Errorf("unable to create temporary binary: %w", err)
	}
	tmpBin.Close()
	os.Remove(tmpBin.Name())
	defer os.Remove(tmpBin.Name())

	args := append(append([]string{}, c.cflags...), tmpSrc, "-o", tmpBin.Name(), "-lmatte")
	if err := c.runToolchain(ctx, stdio, args); err != nil {
		return err
	}

	run := exec.CommandContext(ctx, tmpBin.Name())
	run.Stdout = stdio.Stdout
	run.Stderr = stdio.Stderr
	if err := run.Run(); err != nil {
		return fmt.Errorf("matte_main failed: %w", err)
	}
	return nil
}

func (c *Compiler) writeTempSource(code string) (string, error) {
	tmp, err := os.CreateTemp("", "matte*.c")
	if err != nil {
		return "", fmt.Errorf("unable to create temporary source file: %w", err)
	}
	defer tmp.Close()

	if _, err := tmp.WriteString(code); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("unable to write temporary source file: %w", err)
	}
	return tmp.Name(), nil
}

func (c *Compiler) runToolchain(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cc := c.env.CC
	if cc == "" {
		cc = "gcc"
	}

	cmd := exec.CommandContext(ctx, cc, args...)
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cc, err)
	}
	return nil
}
