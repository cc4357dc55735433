// Command semprobe prints SEM probe-size contributions and parameter sweeps.
package main

import (
	"fmt"
	"os"

	"github.com/edp1096/semprobe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
