// cmd/agential/main.go
package main

import (
	cmd "github.com/mwiater/agential/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the agential CLI. Build metadata is injected with -ldflags.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
