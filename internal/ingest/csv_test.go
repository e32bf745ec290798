package ingest

import (
	"strings"
	"testing"
)

const sampleCSV = `document_name,page_number,paragraph_number,text,tokenized
handbook.pdf,0,0,"The Quick Brown Fox.",quick brown fox
handbook.pdf,0,1,"A second paragraph.",second paragraph
`

// ═══════════════════════════════════════════════════════════════════════════════
// CSV INGEST TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestLoadCSV_ParsesRowsInOrder(t *testing.T) {
	table, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("table.Len() = %d, want 2", table.Len())
	}

	row, _ := table.At(0)
	if row.DocumentName != "handbook.pdf" || row.Tokenized != "quick brown fox" {
		t.Errorf("row 0 = %+v", row)
	}
	if row.ID != 0 {
		t.Errorf("row 0 ID = %d, want 0", row.ID)
	}

	row, _ = table.At(1)
	if row.ParagraphNumber != 1 || row.Tokenized != "second paragraph" {
		t.Errorf("row 1 = %+v", row)
	}
}

func TestLoadCSV_RejectsWrongHeader(t *testing.T) {
	bad := "a,b,c,d,e\n1,2,3,4,5\n"
	if _, err := LoadCSV(strings.NewReader(bad)); err == nil {
		t.Error("LoadCSV should reject a mismatched header")
	}
}
