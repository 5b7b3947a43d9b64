// Command xraydb is a command-line interface to the xraydb reference
// library: element lookups, edges and lines, cross-sections, material
// attenuation, ion-chamber flux inversion, and crystal Darwin widths.
package main

import (
	"fmt"
	"os"

	"github.com/xraydb/xraydb/internal/cli"
)

func main() {
	if err := cli.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
