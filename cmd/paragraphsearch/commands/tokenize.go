package commands

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/paragraphsearch/internal/analyze"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
)

var tokenizeDocumentName string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Convert raw paragraphs (one per line, on stdin) into an ingestible CSV table",
	Long: `Reads one paragraph per line from stdin, tokenizes each with the
default stopword/length/stemming pipeline, and writes the five-column CSV
table "index" and "search" consume. Empty lines are skipped; every other
line becomes page 0 of --document, numbered from 0 in order of the
non-empty lines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		writer := csv.NewWriter(os.Stdout)
		defer writer.Flush()

		if err := writer.Write([]string{"document_name", "page_number", "paragraph_number", "text", "tokenized"}); err != nil {
			return err
		}

		lem := lemma.NewSnowball()
		cfg := analyze.DefaultConfig()

		scanner := bufio.NewScanner(os.Stdin)
		paragraphNumber := 0
		for scanner.Scan() {
			text := scanner.Text()
			if text == "" {
				continue
			}
			tokenized := analyze.Tokenize(text, lem, cfg)
			row := []string{tokenizeDocumentName, "0", fmt.Sprint(paragraphNumber), text, tokenized}
			if err := writer.Write(row); err != nil {
				return err
			}
			paragraphNumber++
		}
		return scanner.Err()
	},
}

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeDocumentName, "document", "stdin", "document_name value to stamp on every row")
}
