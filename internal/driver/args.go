package driver

import (
	"fmt"

	"github.com/geekysuavo/mattec/lang/emitter"
)

// ParseArgs scans args (the command line with the binary name already
// stripped) in order, mirroring matte.c's option loop: cflags, search
// paths and the output mode/filename accumulate as they are seen, and
// bare names are collected as source files. mainer.Parser's struct-tag
// matching cannot express the prefix flags (-f*, -m*, -O*, -W*, -L*,
// -I*) or the concatenated/space-separated -P<path> and -o <name> forms,
// so this is hand-rolled rather than declared on a flag-tagged struct.
func (c *Compiler) ParseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != '-' {
			c.sources = append(c.sources, arg)
			continue
		}

		switch arg[1] {
		case 'g', 'f', 'm', 'O', 'W', 'L', 'I':
			c.cflags = append(c.cflags, arg)

		case 'P':
			if len(arg) < 3 {
				return fmt.Errorf("unable to add pathname string")
			}
			c.searchPath = append(c.searchPath, arg[2:])

		case 'c':
			c.mode = emitter.ToC

		case 'o':
			if i == len(args)-1 {
				return fmt.Errorf("expected output filename argument")
			}
			if c.mode == emitter.ToMem {
				c.mode = emitter.ToExe
			}
			i++
			c.outfile = args[i]

		default:
			return fmt.Errorf("unsupported argument %s", arg)
		}
	}
	return nil
}
