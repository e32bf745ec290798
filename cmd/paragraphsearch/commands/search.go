package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/internal/config"
	"github.com/wizenheimer/paragraphsearch/internal/inflect"
	"github.com/wizenheimer/paragraphsearch/internal/ingest"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
	"github.com/wizenheimer/paragraphsearch/search"
)

var (
	flagPhrase       bool
	flagRanked       bool
	flagRetrieveN    int
	flagSpellCheck   bool
	flagAutocomplete bool
	flagNAutoResults int
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] -- query words",
	Short: "Run a query against the paragraph table",
	Args:  cobra.MinimumNArgs(1),
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

		engine, err := search.New(table, lemma.NewSnowball(), inflect.NewRuleBased())
		if err != nil {
			return fmt.Errorf("building engine: %w", err)
		}

		opts := []config.Option{config.WithRetrieveN(flagRetrieveN), config.WithNAutoResults(flagNAutoResults)}
		if flagPhrase {
			opts = append(opts, config.WithPhrase())
		}
		if flagRanked {
			opts = append(opts, config.WithRanked())
		}
		if flagSpellCheck {
			opts = append(opts, config.WithSpellCheck())
		}
		if flagAutocomplete {
			opts = append(opts, config.WithAutocomplete())
		}

		query := strings.Join(args, " ")
		result, err := engine.Search(query, config.NewSearchOptions(opts...))
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		printResult(table, result)
		return nil
	},
}

// printResult reproduces the reference implementation's result
// presentation: rank, document name, 1-based page/paragraph number,
// score (when ranked), and paragraph text per hit.
func printResult(table *corpus.Table, result *search.Result) {
	if result.SpellCorrected {
		fmt.Printf("no results; retried as: %s\n", result.CorrectedQuery)
	}

	switch {
	case result.Empty():
		fmt.Println("no documents found")
	case len(result.Hits) > 0:
		for rank, hit := range result.Hits {
			printParagraph(table, rank+1, hit.ParagraphID, hit.Score, true)
		}
	default:
		for rank, id := range result.ParagraphIDs {
			printParagraph(table, rank+1, id, 0, false)
		}
	}

	if len(result.AutocompleteSuggestions) > 0 {
		fmt.Println("suggestions:")
		for _, s := range result.AutocompleteSuggestions {
			fmt.Printf("  %s\n", s)
		}
	}
}

func printParagraph(table *corpus.Table, rank, paragraphID int, score float64, showScore bool) {
	row, ok := table.At(paragraphID)
	if !ok {
		return
	}
	if showScore {
		fmt.Printf("%3d. %s (page %d, paragraph %d) score=%.4f\n", rank, row.DocumentName, row.PageNumber+1, row.ParagraphNumber+1, score)
	} else {
		fmt.Printf("%3d. %s (page %d, paragraph %d)\n", rank, row.DocumentName, row.PageNumber+1, row.ParagraphNumber+1)
	}
	fmt.Printf("     %s\n", row.Text)
}

func init() {
	searchCmd.Flags().BoolVar(&flagPhrase, "phrase", false, "treat the query as an exact phrase")
	searchCmd.Flags().BoolVar(&flagRanked, "ranked", false, "rank results by TF-IDF score")
	searchCmd.Flags().IntVar(&flagRetrieveN, "retrieve-n", 0, "cap the number of ranked results (0 = no cap)")
	searchCmd.Flags().BoolVar(&flagSpellCheck, "spell-check", false, "retry once with spell-corrected terms on a zero-result query")
	searchCmd.Flags().BoolVar(&flagAutocomplete, "autocomplete", false, "suggest completions of the query's last token")
	searchCmd.Flags().IntVar(&flagNAutoResults, "n-auto-results", 5, "number of autocomplete suggestions")
}
