package token

import (
	"fmt"
	"sort"
	goscanner "go/scanner"
	gotoken "go/token"
)

// Position is an alias for go/token.Position (Filename, Offset, Line,
// Column). Aliasing it, rather than declaring an equivalent struct, lets
// lang/scanner re-export go/scanner.Error, go/scanner.ErrorList and
// go/scanner.PrintError unmodified: those types are defined in terms of
// go/token.Position and nothing else about them is Go-specific.
type Position = gotoken.Position

// Error and ErrorList are aliases for go/scanner.Error/ErrorList, given a
// home here (rather than only in lang/scanner) since lang/parser and
// lang/resolver accumulate diagnostics of this shape without themselves
// depending on lang/scanner.
type (
	Error     = goscanner.Error
	ErrorList = goscanner.ErrorList
)

// Pos is an opaque, comparable handle to a byte offset within a FileSet. It
// is 0 for the zero value (IsValid reports false) and otherwise resolves to
// a line/column pair through the File that contains it. Pos values from
// different FileSets must never be mixed.
type Pos int

// IsValid reports whether p is an actual source position (as opposed to
// the zero Pos).
func (p Pos) IsValid() bool { return p != 0 }

// PosMode controls how FormatPos renders a position.
type PosMode int

const (
	// PosNone omits position information entirely.
	PosNone PosMode = iota
	// PosShort prints only the line and column (no filename).
	PosShort
	// PosLong prints filename:line:column.
	PosLong
	// PosOffsets prints filename:offset, used by golden tests so that
	// fixtures do not have to be rewritten every time a line shifts.
	PosOffsets
)

// FormatPos renders pos according to mode. isStart only affects PosOffsets
// (no other mode distinguishes start/end).
func FormatPos(mode PosMode, file *File, pos Pos, isStart bool) string {
	switch mode {
	case PosNone:
		return ""
	case PosOffsets:
		return fmt.Sprintf("%s:#%d", file.Name(), file.Offset(pos))
	case PosShort:
		p := file.Position(pos)
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		p := file.Position(pos)
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
}

// A File tracks the line boundaries of a single source file's bytes within
// a FileSet, so that a byte offset (Pos) can be translated to a 1-based
// line/column Position.
type File struct {
	set   *FileSet
	name  string
	base  int // offset of this file's Pos 0 within the FileSet
	size  int
	lines []int // byte offsets of the start of each line, lines[0] == 0
}

// Name returns the filename this File was registered with.
func (f *File) Name() string { return f.name }

// Size returns the number of bytes in this file.
func (f *File) Size() int { return f.size }

// Base returns the offset of Pos 1 for this file within the owning
// FileSet.
func (f *File) Base() int { return f.base }

// Pos converts a 0-based byte offset within this file to a FileSet-wide
// Pos.
func (f *File) Pos(offset int) Pos {
	if offset < 0 || offset > f.size {
		panic(fmt.Sprintf("%s: offset %d out of range [0, %d]", f.name, offset, f.size))
	}
	return Pos(f.base + offset)
}

// Offset converts a Pos produced by this file back to a 0-based byte
// offset.
func (f *File) Offset(p Pos) int {
	off := int(p) - f.base
	if off < 0 || off > f.size {
		panic(fmt.Sprintf("%s: Pos %d out of range for this file", f.name, p))
	}
	return off
}

// AddLine records that a new line begins at the given 0-based byte offset.
// Offsets must be added in increasing order; this is the File-side half of
// the scanner's "line numbers are exactly one more than the number of \n
// bytes consumed" invariant (spec.md §8).
func (f *File) AddLine(offset int) {
	if n := len(f.lines); (n == 0 || f.lines[n-1] < offset) && offset < f.size {
		f.lines = append(f.lines, offset)
	}
}

// LineCount returns the number of lines recorded so far (at least 1).
func (f *File) LineCount() int { return len(f.lines) }

// Position resolves a Pos belonging to this file into a line/column
// Position.
func (f *File) Position(p Pos) Position {
	offset := f.Offset(p)
	// lines[i] is the offset of the first byte of line i+1 (1-based line
	// numbers); find the last line whose start is <= offset.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{
		Filename: f.name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
	}
}

// FileSet tracks the set of source files that positions (Pos values) may
// refer to, so that a single Pos is enough to recover filename, line and
// column without threading a *File everywhere.
type FileSet struct {
	files []*File
	base  int
}

// NewFileSet creates an empty FileSet. Pos 0 is never valid, so the first
// file registered starts at base 1.
func NewFileSet() *FileSet {
	return &FileSet{base: 1}
}

// AddFile registers a new file of the given size (or -1 to use len(base)
// bytes lazily, matching go/token.FileSet.AddFile's convention, unused
// here since callers always know the size up front) and returns its
// *File handle.
func (s *FileSet) AddFile(name string, _ int, size int) *File {
	f := &File{set: s, name: name, base: s.base, size: size, lines: []int{0}}
	s.files = append(s.files, f)
	s.base += size + 1 // +1 so that File.Pos(size) (EOF) never collides with the next file's Pos(0)
	return f
}

// FileAt returns the i-th file registered with AddFile, in registration
// order. internal/driver uses this to pair each file of a multi-file
// compile with the token stream lang/scanner.ScanFiles returned for it.
func (s *FileSet) FileAt(i int) *File { return s.files[i] }

// FileCount returns the number of files registered in s.
func (s *FileSet) FileCount() int { return len(s.files) }

// File returns the *File that owns the given Pos, or nil if p does not
// belong to any file registered in s.
func (s *FileSet) File(p Pos) *File {
	i := sort.Search(len(s.files), func(i int) bool { return s.files[i].base > int(p) }) - 1
	if i < 0 || i >= len(s.files) {
		return nil
	}
	return s.files[i]
}
