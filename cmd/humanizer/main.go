// Command humanizer runs the humanize backend or sends a single humanize
// request from the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
