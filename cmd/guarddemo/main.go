// guarddemo appends "hello world" to a file under scope guards.
package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/defer_ive_go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
