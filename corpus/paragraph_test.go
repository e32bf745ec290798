package corpus

import (
	"reflect"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PARAGRAPH TABLE TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestNewTable_AssignsDenseIDs(t *testing.T) {
	table := NewTable([]ParagraphRecord{
		{DocumentName: "a"},
		{DocumentName: "b"},
		{DocumentName: "c"},
	})

	for i, row := range table.All() {
		if row.ID != i {
			t.Errorf("row %d has ID %d, want %d", i, row.ID, i)
		}
	}
}

func TestTable_At(t *testing.T) {
	table := NewTable([]ParagraphRecord{{DocumentName: "only"}})

	if _, ok := table.At(-1); ok {
		t.Error("At(-1) should report not-found")
	}
	if _, ok := table.At(1); ok {
		t.Error("At(1) should report not-found on a 1-row table")
	}
	row, ok := table.At(0)
	if !ok || row.DocumentName != "only" {
		t.Errorf("At(0) = %+v, %v", row, ok)
	}
}

func TestTokens_DropsPunctuationAndDedupes(t *testing.T) {
	got := Tokens("brown fox ! fox brown .")
	want := []string{"brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestTokenSequence_PreservesOrderAndDuplicates(t *testing.T) {
	got := TokenSequence("red car red bike")
	want := []string{"red", "car", "red", "bike"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenSequence = %v, want %v", got, want)
	}
}
