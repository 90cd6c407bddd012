//go:build !linux && !darwin && !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"memsniff is only supported on Linux, macOS, and Windows.\n\nIf you are seeing this message, you are attempting to build or run memsniff on an unsupported platform.",
	)
	os.Exit(1)
}
