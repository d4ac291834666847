package source

import "testing"

func TestQuoteIdentMySQL(t *testing.T) {
	if got := quoteIdentMySQL("tbl_member"); got != "`tbl_member`" {
		t.Errorf("unexpected quoting: %s", got)
	}
}

func TestMockReaderRowCount(t *testing.T) {
	m := &MockReader{RowCounts: map[string]int64{TableMembers: 3}}

	got, err := m.RowCount(t.Context(), TableMembers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}

	if _, err := m.RowCount(t.Context(), TableProducts); err == nil {
		t.Error("expected error for unconfigured table")
	}
}
