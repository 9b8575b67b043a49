package main

import (
	"fmt"
	"os"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	initConsole()

	if err := newRootCommand(defaultApp()).Execute(); err != nil {
		logAndExit(err)
	}
}

func logAndExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}
