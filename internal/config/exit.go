package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal startup error on stderr, prefixed with the command
// name, and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "diesir: "+format+"\n", args...)
	os.Exit(1)
}
