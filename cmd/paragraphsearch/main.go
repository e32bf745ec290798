// Command paragraphsearch is a CLI entry point over the search.Engine
// facade: an "index" subcommand that builds an index from a CSV
// paragraph table, and a "search" subcommand exposing §6's reference
// search parameters as flags.
package main

import (
	"fmt"
	"os"

	"github.com/wizenheimer/paragraphsearch/cmd/paragraphsearch/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
