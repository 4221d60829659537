package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/emitter"
	"github.com/geekysuavo/mattec/lang/parser"
	"github.com/geekysuavo/mattec/lang/resolver"
	"github.com/geekysuavo/mattec/lang/scanner"
)

// ResolveSourcePath finds name either as given or, if not found directly,
// under one of the compiler's search path directories (MATTEPATH / -P),
// tried in the order they were added.
func (c *Compiler) ResolveSourcePath(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range c.searchPath {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to compile '%s': no such file", name)
}

// compile runs the full scan, parse, resolve and emit pipeline over the
// compiler's accumulated source files, mirroring compiler_execute's
// sequence of parser_set_file calls (one shared tree, extended file by
// file) followed by a single resolve_symbols/emit_tree pass.
func (c *Compiler) compile(ctx context.Context) (string, error) {
	paths := make([]string, len(c.sources))
	for i, name := range c.sources {
		p, err := c.ResolveSourcePath(name)
		if err != nil {
			return "", err
		}
		paths[i] = p
	}

	fset, toksPerFile, err := scanner.ScanFiles(ctx, paths...)
	if err != nil {
		return "", err
	}

	var tree *ast.Node
	for i, toks := range toksPerFile {
		t, errs := parser.Parse(fset.FileAt(i), toks)
		if len(errs) > 0 {
			return "", errs[0]
		}
		tree = ast.Merge(tree, t)
	}
	if tree == nil {
		return "", fmt.Errorf("no source files given")
	}

	resolved, errs := resolver.Resolve(tree)
	if len(errs) > 0 {
		return "", errs[0]
	}

	// to_mem builds and runs a real executable (see compileToMem), so it
	// needs the same emitted entry point to_exe does; only to_c skips it.
	emitMode := c.mode
	if emitMode == emitter.ToMem {
		emitMode = emitter.ToExe
	}

	code, err := emitter.Emit(resolved, emitMode)
	if err != nil {
		return "", err
	}
	return code, nil
}
