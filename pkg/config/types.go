// Package config holds the validated run configuration for catr.
package config

// Config is what the command line delivers to the core.
type Config struct {
	// Files are the source tokens in the order given. "-" is standard input.
	Files []string `yaml:"files"`

	// NumberLines numbers every output line.
	NumberLines bool `yaml:"number_lines,omitempty"`

	// NumberNonblankLines numbers only non-blank output lines.
	NumberNonblankLines bool `yaml:"number_nonblank_lines,omitempty"`
}
