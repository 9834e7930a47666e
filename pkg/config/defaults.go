package config

// DefaultFiles is used when no FILE arguments are given.
var DefaultFiles = []string{"-"}

// DefaultConfig returns a configuration that copies standard input unchanged.
func DefaultConfig() *Config {
	return &Config{
		Files: append([]string(nil), DefaultFiles...),
	}
}
