package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liftover/liftover/internal/registry"
	"github.com/liftover/liftover/internal/source"
	"github.com/liftover/liftover/internal/target"
)

// Result is the typed outcome of one table transfer.
type Result struct {
	Table    string        `json:"table"`
	Migrated int           `json:"migrated"`
	Skipped  int           `json:"skipped"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Failed reports whether the table's transaction was rolled back.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Runner executes the five table transfers in dependency order:
// employees, customers and products first, then invoices (needs
// customers), then invoice items (needs invoices and products).
type Runner struct {
	Source   source.Reader
	Target   target.Writer
	Registry *registry.Registry
	Logger   *slog.Logger

	// BatchSize is the number of rows per insert statement (default 100).
	BatchSize int
	// Now stamps created_at/updated_at on every migrated row. Defaults
	// to time.Now.
	Now func() time.Time
	// NewID mints target identifiers. Defaults to uuid.NewString.
	NewID func() string
}

// step is one table transfer. build fetches and transforms the source
// rows; deferred marks tables whose constraints are checked at commit
// and whose user triggers are disabled around the bulk insert.
type step struct {
	table    string
	columns  []string
	deferred bool
	build    func(ctx context.Context) (batch, error)
}

// batch holds transformed rows plus the registry mappings to record once
// the table commits. Rows dropped on a failed FK lookup count as skipped.
type batch struct {
	rows    [][]any
	pending []mapping
	skipped int
}

type mapping struct {
	tag registry.Tag
	id  int64
	uid string
}

// Run executes all transfers. A failure in one table rolls that table
// back and the run continues; the caller decides what to do with the
// per-table Results.
func (r *Runner) Run(ctx context.Context) []Result {
	r.applyDefaults()

	steps := []step{
		{table: target.TableEmployees, columns: employeeColumns, build: r.buildEmployees},
		{table: target.TableCustomers, columns: customerColumns, build: r.buildCustomers},
		{table: target.TableProducts, columns: productColumns, build: r.buildProducts},
		{table: target.TableInvoices, columns: invoiceColumns, build: r.buildInvoices},
		{table: target.TableInvoiceItems, columns: invoiceItemColumns, build: r.buildInvoiceItems, deferred: true},
	}

	results := make([]Result, 0, len(steps))
	for _, s := range steps {
		results = append(results, r.runStep(ctx, s))
	}
	return results
}

func (r *Runner) runStep(ctx context.Context, s step) (res Result) {
	start := time.Now()
	res = Result{Table: s.table}
	defer func() {
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			res.Error = res.Err.Error()
		}
	}()

	b, err := s.build(ctx)
	if err != nil {
		res.Err = fmt.Errorf("fetching source rows: %w", err)
		r.Logger.Error("table transfer failed", "table", s.table, "error", res.Err)
		return res
	}
	res.Skipped = b.skipped

	tx, err := r.Target.Begin(ctx)
	if err != nil {
		res.Err = err
		r.Logger.Error("table transfer failed", "table", s.table, "error", err)
		return res
	}
	defer tx.Rollback(ctx) // no-op once committed

	var triggers []string
	if s.deferred {
		if err := tx.DeferConstraints(ctx); err != nil {
			res.Err = err
			r.Logger.Error("table transfer failed", "table", s.table, "error", err)
			return res
		}
		triggers, err = tx.UserTriggers(ctx, s.table)
		if err != nil {
			res.Err = err
			r.Logger.Error("table transfer failed", "table", s.table, "error", err)
			return res
		}
		r.toggleTriggers(ctx, tx, s.table, triggers, false)
	}

	for i := 0; i < len(b.rows); i += r.BatchSize {
		end := min(i+r.BatchSize, len(b.rows))
		if err := tx.Insert(ctx, s.table, s.columns, b.rows[i:end]); err != nil {
			res.Err = err
			r.Logger.Error("table transfer failed, rolling back", "table", s.table, "error", err)
			return res
		}
	}

	if s.deferred {
		r.toggleTriggers(ctx, tx, s.table, triggers, true)
	}

	if err := tx.Commit(ctx); err != nil {
		res.Err = fmt.Errorf("committing %s: %w", s.table, err)
		r.Logger.Error("table transfer failed", "table", s.table, "error", res.Err)
		return res
	}

	// Mappings become visible to dependent transfers only after the
	// commit, so a rolled-back table never leaves dangling references.
	for _, m := range b.pending {
		r.Registry.Put(m.tag, m.id, m.uid)
	}

	res.Migrated = len(b.rows)
	r.Logger.Info("table transferred",
		"table", s.table, "migrated", res.Migrated, "skipped", res.Skipped)
	return res
}

// toggleTriggers flips each trigger and logs failures instead of
// stopping; the bulk path works either way.
func (r *Runner) toggleTriggers(ctx context.Context, tx target.Tx, table string, triggers []string, enabled bool) {
	for _, trig := range triggers {
		if err := tx.SetTriggerEnabled(ctx, table, trig, enabled); err != nil {
			r.Logger.Warn("trigger toggle failed",
				"table", table, "trigger", trig, "enabled", enabled, "error", err)
		}
	}
}

func (r *Runner) applyDefaults() {
	if r.BatchSize <= 0 {
		r.BatchSize = 100
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.NewID == nil {
		r.NewID = uuid.NewString
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
}
