package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/ingest"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build an index over the paragraph table and report vocabulary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(tablePath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", tablePath, err)
		}
		defer file.Close()

		table, err := ingest.LoadCSV(file)
		if err != nil {
			return fmt.Errorf("loading table: %w", err)
		}

		snap, err := index.Build(table)
		if err != nil && err != index.ErrEmptyCorpus {
			return fmt.Errorf("building index: %w", err)
		}

		fmt.Printf("paragraphs: %d\n", snap.TotalParagraphs)
		fmt.Printf("vocabulary: %d terms\n", len(snap.Vocabulary))
		fmt.Printf("biwords:    %d\n", snap.Biwords.Len())
		return nil
	},
}
