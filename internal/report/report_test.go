package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liftover/liftover/internal/registry"
	"github.com/liftover/liftover/internal/transfer"
)

func sampleResults() []transfer.Result {
	failed := errors.New("constraint violation")
	return []transfer.Result{
		{Table: "employees", Migrated: 4},
		{Table: "customers", Migrated: 3},
		{Table: "products", Err: failed, Error: failed.Error()},
		{Table: "invoices", Migrated: 2, Skipped: 1},
		{Table: "invoice_items", Skipped: 5},
	}
}

func sampleRegistry() *registry.Registry {
	reg := registry.New()
	reg.Put(registry.TagEmployee, 1, "a")
	reg.Put(registry.TagMember, 1, "b")
	reg.Put(registry.TagMember, 2, "c")
	reg.Put(registry.TagTransaction, 1, "d")
	return reg
}

func TestGenerateTotals(t *testing.T) {
	r := Generate(StoreSummary{Host: "legacy", Database: "rekamteknik"},
		StoreSummary{Host: "new", Database: "postgres"},
		sampleResults(), sampleRegistry())

	if r.Totals.Migrated != 9 {
		t.Errorf("expected 9 migrated, got %d", r.Totals.Migrated)
	}
	if r.Totals.Skipped != 6 {
		t.Errorf("expected 6 skipped, got %d", r.Totals.Skipped)
	}
	if len(r.Totals.FailedTables) != 1 || r.Totals.FailedTables[0] != "products" {
		t.Errorf("unexpected failed tables: %v", r.Totals.FailedTables)
	}
	if r.Registry.Customers != 2 || r.Registry.TotalEntries != 4 {
		t.Errorf("unexpected registry summary: %+v", r.Registry)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	r := Generate(StoreSummary{Host: "legacy", Database: "rekamteknik"},
		StoreSummary{Host: "new", Database: "postgres"},
		sampleResults(), sampleRegistry())

	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded := &RunReport{}
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if loaded.Totals.Migrated != 9 {
		t.Errorf("expected 9 migrated after round trip, got %d", loaded.Totals.Migrated)
	}
	if loaded.Tables[2].Error != "constraint violation" {
		t.Errorf("failure detail lost: %+v", loaded.Tables[2])
	}
}

func TestFormatText(t *testing.T) {
	r := Generate(StoreSummary{Host: "legacy", Database: "rekamteknik"},
		StoreSummary{Host: "new", Database: "postgres"},
		sampleResults(), sampleRegistry())

	text := FormatText(r)
	if !strings.Contains(text, "FAILED: constraint violation") {
		t.Error("expected failure line in text report")
	}
	if !strings.Contains(text, "Totals: 9 migrated, 6 skipped") {
		t.Errorf("expected totals line, got:\n%s", text)
	}
	if !strings.Contains(text, "Failed tables: products") {
		t.Error("expected failed tables line")
	}
}
