package cli

// Version is set via ldflags at build time.
var Version = "0.1.0"

const versionTemplate = "{{.Name}} {{.Version}}\n"
