// Package cli implements the xraydb command-line tool: a thin cobra wrapper
// around the public xraydb API, exposing a package-level Root command that
// cmd/xraydb/main.go executes directly.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

// Root is the top-level xraydb command.
var Root = &cobra.Command{
	Use:   "xraydb",
	Short: "Query the embedded X-ray physics reference database",
}

func init() {
	flags := pflag.NewFlagSet("xraydb", pflag.ExitOnError)
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configPath, "config", "", "path to an optional TOML config file")
	Root.PersistentFlags().AddFlagSet(flags)

	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return loadConfig()
	}

	Root.AddCommand(elementCmd, edgeCmd, lineCmd, muCmd, materialCmd, ionchamberCmd, darwinCmd)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
