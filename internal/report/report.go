package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liftover/liftover/internal/registry"
	"github.com/liftover/liftover/internal/transfer"
)

// RunReport is the structured outcome of one migration run.
type RunReport struct {
	Version     string            `json:"version"`
	GeneratedAt time.Time         `json:"generated_at"`
	Source      StoreSummary      `json:"source"`
	Target      StoreSummary      `json:"target"`
	Tables      []transfer.Result `json:"tables"`
	Totals      Totals            `json:"totals"`
	Registry    RegistrySummary   `json:"registry"`
}

// StoreSummary identifies one end of the transfer.
type StoreSummary struct {
	Host     string `json:"host"`
	Database string `json:"database"`
}

// Totals aggregates the per-table results.
type Totals struct {
	Migrated     int      `json:"migrated"`
	Skipped      int      `json:"skipped"`
	FailedTables []string `json:"failed_tables,omitempty"`
}

// RegistrySummary counts the identifier mappings recorded per entity.
type RegistrySummary struct {
	Employees    int `json:"employees"`
	Customers    int `json:"customers"`
	Products     int `json:"products"`
	Invoices     int `json:"invoices"`
	TotalEntries int `json:"total_entries"`
}

// Generate builds a RunReport from the per-table results and the registry.
func Generate(source, target StoreSummary, results []transfer.Result, reg *registry.Registry) *RunReport {
	totals := Totals{}
	for _, r := range results {
		totals.Migrated += r.Migrated
		totals.Skipped += r.Skipped
		if r.Failed() {
			totals.FailedTables = append(totals.FailedTables, r.Table)
		}
	}

	return &RunReport{
		Version:     "1",
		GeneratedAt: time.Now(),
		Source:      source,
		Target:      target,
		Tables:      results,
		Totals:      totals,
		Registry: RegistrySummary{
			Employees:    reg.Count(registry.TagEmployee),
			Customers:    reg.Count(registry.TagMember),
			Products:     reg.Count(registry.TagProduct),
			Invoices:     reg.Count(registry.TagTransaction),
			TotalEntries: reg.Len(),
		},
	}
}

// WriteJSON writes the report as JSON.
func WriteJSON(r *RunReport, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// FormatText renders the report as human-readable text.
func FormatText(r *RunReport) string {
	var b strings.Builder

	b.WriteString("=== Liftover Migration Report ===\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	b.WriteString(fmt.Sprintf("Source: %s/%s\n", r.Source.Host, r.Source.Database))
	b.WriteString(fmt.Sprintf("Target: %s/%s\n\n", r.Target.Host, r.Target.Database))

	b.WriteString("Tables:\n")
	for _, t := range r.Tables {
		if t.Failed() {
			b.WriteString(fmt.Sprintf("  %-14s FAILED: %s\n", t.Table, t.Error))
			continue
		}
		b.WriteString(fmt.Sprintf("  %-14s migrated=%d skipped=%d (%s)\n",
			t.Table, t.Migrated, t.Skipped, t.Elapsed.Round(time.Millisecond)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Totals: %d migrated, %d skipped\n", r.Totals.Migrated, r.Totals.Skipped))
	if len(r.Totals.FailedTables) > 0 {
		b.WriteString(fmt.Sprintf("Failed tables: %s\n", strings.Join(r.Totals.FailedTables, ", ")))
	}
	b.WriteString(fmt.Sprintf("Registry entries: %d\n", r.Registry.TotalEntries))

	return b.String()
}
