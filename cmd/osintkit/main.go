// osintkit is a small pluggable toolkit of OSINT commands.
package main

import (
	"os"

	"github.com/osintkit/osintkit/cmd/osintkit/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args, os.Stdout, os.Stderr, cmd.DefaultPlugins()))
}
