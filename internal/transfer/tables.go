package transfer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/liftover/liftover/internal/registry"
	"github.com/liftover/liftover/internal/source"
)

var employeeColumns = []string{
	"id", "name", "email", "phone", "role", "status", "rating",
	"total_jobs_completed", "avatar_url", "created_at", "updated_at",
}

var customerColumns = []string{
	"id", "name", "phone", "email", "address", "category",
	"payment_terms_days", "current_outstanding", "blacklisted", "notes",
	"created_at", "updated_at", "credit_limit",
}

var productColumns = []string{
	"id", "sku", "name", "description", "category", "unit", "cost_price",
	"sell_price", "stock", "min_stock_threshold", "is_service_item",
	"is_active", "created_at", "updated_at", "image_url",
}

var invoiceColumns = []string{
	"id", "invoice_number", "customer_id", "invoice_date", "due_date",
	"status", "payment_status", "services_total", "items_total",
	"discount", "tax", "grand_total", "amount_paid", "notes",
	"admin_notes", "created_by", "created_at", "updated_at",
	"service_address",
}

var invoiceItemColumns = []string{
	"id", "invoice_id", "product_id", "product_name", "product_sku",
	"description", "quantity", "unit_price", "discount", "total_price",
	"register_as_unit", "registered_unit_id", "created_at", "updated_at",
}

func (r *Runner) buildEmployees(ctx context.Context) (batch, error) {
	rows, err := r.Source.Employees(ctx)
	if err != nil {
		return batch{}, err
	}
	now := r.Now()
	var b batch
	for _, e := range rows {
		id := r.NewID()
		b.rows = append(b.rows, employeeValues(e, id, now))
		b.pending = append(b.pending, mapping{registry.TagEmployee, e.ID, id})
	}
	return b, nil
}

func (r *Runner) buildCustomers(ctx context.Context) (batch, error) {
	rows, err := r.Source.Members(ctx)
	if err != nil {
		return batch{}, err
	}
	now := r.Now()
	var b batch
	for _, m := range rows {
		id := r.NewID()
		b.rows = append(b.rows, customerValues(m, id, now))
		b.pending = append(b.pending, mapping{registry.TagMember, m.ID, id})
	}
	return b, nil
}

func (r *Runner) buildProducts(ctx context.Context) (batch, error) {
	rows, err := r.Source.Products(ctx)
	if err != nil {
		return batch{}, err
	}
	now := r.Now()
	var b batch
	for _, p := range rows {
		id := r.NewID()
		b.rows = append(b.rows, productValues(p, id, now))
		b.pending = append(b.pending, mapping{registry.TagProduct, p.ID, id})
	}
	return b, nil
}

func (r *Runner) buildInvoices(ctx context.Context) (batch, error) {
	rows, err := r.Source.Transactions(ctx)
	if err != nil {
		return batch{}, err
	}
	now := r.Now()
	var b batch
	for _, t := range rows {
		customerID, ok := r.Registry.Get(registry.TagMember, t.MemberID)
		if !ok {
			// Referenced member was never migrated; drop the invoice.
			b.skipped++
			continue
		}
		id := r.NewID()
		b.rows = append(b.rows, invoiceValues(t, customerID, id, now))
		b.pending = append(b.pending, mapping{registry.TagTransaction, t.ID, id})
	}
	return b, nil
}

func (r *Runner) buildInvoiceItems(ctx context.Context) (batch, error) {
	rows, err := r.Source.TransactionDetails(ctx)
	if err != nil {
		return batch{}, err
	}
	now := r.Now()
	var b batch
	for _, d := range rows {
		invoiceID, okInv := r.Registry.Get(registry.TagTransaction, d.TransactionID)
		productID, okProd := r.Registry.Get(registry.TagProduct, d.ProductID)
		if !okInv || !okProd {
			b.skipped++
			continue
		}
		b.rows = append(b.rows, invoiceItemValues(d, invoiceID, productID, r.NewID(), now))
	}
	return b, nil
}

// The target schema has columns with no legacy equivalent; every migrated
// row gets the constants of a freshly onboarded record, and created_at/
// updated_at carry the migration wall-clock time, not the legacy
// timestamps.

func employeeValues(e source.EmployeeRow, id string, now time.Time) []any {
	return []any{
		id,
		e.Name,
		nullable(e.Email),
		nullable(e.Phone),
		"technician", // role
		"available",  // status
		0.0,          // rating
		0,            // total_jobs_completed
		nil,          // avatar_url
		now,
		now,
	}
}

func customerValues(m source.MemberRow, id string, now time.Time) []any {
	return []any{
		id,
		m.Name,
		nullable(m.Phone),
		nil, // email: no legacy column
		nullable(m.Address),
		"retail", // category
		0,        // payment_terms_days
		0.0,      // current_outstanding
		false,    // blacklisted
		nil,      // notes
		now,
		now,
		0.0, // credit_limit
	}
}

func productValues(p source.ProductRow, id string, now time.Time) []any {
	return []any{
		id,
		stringOr(p.Serial, fmt.Sprintf("SKU-%d", p.ID)),
		stringOr(p.Name, "Unnamed Product"),
		nullable(p.Description),
		"spare_parts", // category
		stringOr(p.Unit, "pcs"),
		floatOr(p.CostPrice, 0),
		floatOr(p.SellPrice, 0),
		intOr(p.Stock, 0),
		5,     // min_stock_threshold
		false, // is_service_item
		true,  // is_active
		now,
		now,
		nil, // image_url
	}
}

func invoiceValues(t source.TransactionRow, customerID, id string, now time.Time) []any {
	total := int64(floatOr(t.Total, 0))
	payment := "unpaid"
	if t.Status.Valid && t.Status.String == "paid" {
		payment = "paid"
	}
	var invoiceDate any
	if t.Date.Valid {
		invoiceDate = t.Date.Time
	}
	return []any{
		id,
		t.ID, // legacy transaction id doubles as the invoice number
		customerID,
		invoiceDate,
		nil,         // due_date
		"completed", // status
		payment,
		0.0,   // services_total
		total, // items_total
		0.0,   // discount
		0.0,   // tax
		total, // grand_total
		floatOr(t.Paid, 0),
		nullable(t.Notes),
		nil, // admin_notes
		nil, // created_by
		now,
		now,
		nullable(t.Location), // service_address
	}
}

func invoiceItemValues(d source.TransactionDetailRow, invoiceID, productID, id string, now time.Time) []any {
	// A missing or zero quantity means one unit was sold.
	qty := intOr(d.Qty, 1)
	if qty == 0 {
		qty = 1
	}
	return []any{
		id,
		invoiceID,
		productID,
		nullable(d.ProductName),
		nil, // product_sku
		nil, // description
		qty,
		floatOr(d.Price, 0),
		0.0, // discount
		floatOr(d.Subtotal, 0),
		false, // register_as_unit
		nil,   // registered_unit_id
		now,
		now,
	}
}

// nullable maps an absent legacy value to SQL NULL.
func nullable(s sql.NullString) any {
	if s.Valid {
		return s.String
	}
	return nil
}

// stringOr falls back when the legacy value is NULL or empty.
func stringOr(s sql.NullString, fallback string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return fallback
}

func floatOr(f sql.NullFloat64, fallback float64) float64 {
	if f.Valid {
		return f.Float64
	}
	return fallback
}

func intOr(i sql.NullInt64, fallback int64) int64 {
	if i.Valid {
		return i.Int64
	}
	return fallback
}
