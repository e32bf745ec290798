package commands

import "github.com/spf13/cobra"

var tablePath string

// Root returns the paragraphsearch command tree: "index" and "search",
// both consuming the same --table CSV path, and "tokenize", which reads
// stdin and writes a CSV table to stdout.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "paragraphsearch",
		Short: "Full-text search over a tokenized paragraph table",
	}

	root.PersistentFlags().StringVarP(&tablePath, "table", "t", "", "path to the tokenized paragraph CSV table")
	root.MarkPersistentFlagRequired("table")

	root.AddCommand(indexCmd, searchCmd, tokenizeCmd)
	return root
}
