// Package driver implements the mattec command line: flag parsing, search
// path resolution, and the three output modes the original matte.c's
// compile_to_c/compile_to_exe/compile_to_mem implemented.
package driver

import "github.com/caarlos0/env/v6"

// EnvConfig holds the environment-derived configuration of a compile run.
// Everything else arrives on the command line; see ParseArgs.
type EnvConfig struct {
	// Path is MATTEPATH, a colon-separated list of directories searched
	// for source files that are not found relative to the current
	// directory, matching the original compiler_new's getenv(MATTEPATH_ENV_STRING).
	Path string `env:"MATTEPATH"`

	// CC overrides the host C compiler binary invoked for -o and default
	// (to-mem) builds; -c only writes the C file. Undocumented, supplementing spec.md; the original hardcodes
	// "gcc" in compile_to_exe/compile_to_mem's string_appendf calls.
	CC string `env:"MATTEC_CC" envDefault:"gcc"`
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
