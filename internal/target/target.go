package target

import "context"

// Target table names in the new schema.
const (
	TableEmployees    = "employees"
	TableCustomers    = "customers"
	TableProducts     = "products"
	TableInvoices     = "invoices"
	TableInvoiceItems = "invoice_items"
)

// Writer provides write access to the target database. All row writes
// happen inside a Tx so each table transfer commits or rolls back as a
// unit.
type Writer interface {
	Connect(ctx context.Context) error
	Begin(ctx context.Context) (Tx, error)
	RowCount(ctx context.Context, table string) (int64, error)
	Close() error
}

// Tx is a single table transfer's transaction.
type Tx interface {
	// Insert writes one batch of rows with a single multi-row statement.
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
	// DeferConstraints postpones constraint checking to commit time for
	// the remainder of this transaction.
	DeferConstraints(ctx context.Context) error
	// UserTriggers lists non-system triggers on a table.
	UserTriggers(ctx context.Context, table string) ([]string, error)
	// SetTriggerEnabled toggles one trigger on a table.
	SetTriggerEnabled(ctx context.Context, table, trigger string, enabled bool) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
