// Command asciistats flips coins in the terminal and draws the outcome
// distribution next to the ideal one.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/asciistats/cmd/asciistats/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
