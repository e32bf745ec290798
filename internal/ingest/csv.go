// Package ingest loads a paragraph table from CSV into the corpus
// package's in-memory form. The five-column layout (document_name,
// page_number, paragraph_number, text, tokenized) has no struct-mapping
// library anywhere in the retrieved corpus, so this one reader is
// standard-library encoding/csv by necessity — everything downstream of
// it (the indexes, the query resolver) is pure in-memory Go.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wizenheimer/paragraphsearch/corpus"
)

var expectedHeader = []string{"document_name", "page_number", "paragraph_number", "text", "tokenized"}

// LoadCSV reads a paragraph table from r and returns it as a
// corpus.Table, with paragraph IDs assigned by row position per §6's
// iterator contract ("paragraph_id is the row's 0-based position").
// The first row must be the header; column order must match
// expectedHeader exactly.
func LoadCSV(r io.Reader) (*corpus.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []corpus.ParagraphRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading row %d: %w", len(rows)+1, err)
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("ingest: row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	return corpus.NewTable(rows), nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("ingest: expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, col := range expectedHeader {
		if header[i] != col {
			return fmt.Errorf("ingest: expected column %d to be %q, got %q", i, col, header[i])
		}
	}
	return nil
}

func parseRow(record []string) (corpus.ParagraphRecord, error) {
	pageNumber, err := strconv.Atoi(record[1])
	if err != nil {
		return corpus.ParagraphRecord{}, fmt.Errorf("page_number: %w", err)
	}
	paragraphNumber, err := strconv.Atoi(record[2])
	if err != nil {
		return corpus.ParagraphRecord{}, fmt.Errorf("paragraph_number: %w", err)
	}

	return corpus.ParagraphRecord{
		DocumentName:    record[0],
		PageNumber:      pageNumber,
		ParagraphNumber: paragraphNumber,
		Text:            record[3],
		Tokenized:       record[4],
	}, nil
}
