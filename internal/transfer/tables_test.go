package transfer

import (
	"database/sql"
	"testing"
	"time"

	"github.com/liftover/liftover/internal/source"
)

var stamp = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestEmployeeValues(t *testing.T) {
	e := source.EmployeeRow{
		ID:    7,
		Name:  "Budi",
		Email: nstr("budi@example.com"),
		Phone: nstr("0812"),
	}
	vals := employeeValues(e, "uuid-1", stamp)

	if len(vals) != len(employeeColumns) {
		t.Fatalf("expected %d values, got %d", len(employeeColumns), len(vals))
	}
	if vals[0] != "uuid-1" || vals[1] != "Budi" {
		t.Errorf("unexpected identity values: %v", vals[:2])
	}
	if vals[4] != "technician" || vals[5] != "available" {
		t.Errorf("expected onboarding defaults, got role=%v status=%v", vals[4], vals[5])
	}
	if vals[9] != stamp || vals[10] != stamp {
		t.Error("timestamps must carry the migration wall-clock time")
	}
}

func TestEmployeeValues_NullContact(t *testing.T) {
	vals := employeeValues(source.EmployeeRow{ID: 1, Name: "Sari"}, "uuid-1", stamp)
	if vals[2] != nil || vals[3] != nil {
		t.Errorf("absent email/phone should map to NULL, got %v %v", vals[2], vals[3])
	}
}

func TestCustomerValues(t *testing.T) {
	m := source.MemberRow{ID: 3, Name: "Toko Jaya", Address: nstr("Jl. Melati 4")}
	vals := customerValues(m, "uuid-9", stamp)

	if len(vals) != len(customerColumns) {
		t.Fatalf("expected %d values, got %d", len(customerColumns), len(vals))
	}
	if vals[3] != nil {
		t.Errorf("customers have no legacy email, got %v", vals[3])
	}
	if vals[5] != "retail" || vals[8] != false {
		t.Errorf("expected retail/non-blacklisted defaults, got %v %v", vals[5], vals[8])
	}
}

func TestProductValues_Coalescing(t *testing.T) {
	p := source.ProductRow{ID: 42} // everything absent
	vals := productValues(p, "uuid-2", stamp)

	if vals[1] != "SKU-42" {
		t.Errorf("expected synthesized SKU-42, got %v", vals[1])
	}
	if vals[2] != "Unnamed Product" {
		t.Errorf("expected name fallback, got %v", vals[2])
	}
	if vals[5] != "pcs" {
		t.Errorf("expected unit fallback pcs, got %v", vals[5])
	}
	if vals[6] != 0.0 || vals[7] != 0.0 || vals[8] != int64(0) {
		t.Errorf("expected zero price/stock fallbacks, got %v %v %v", vals[6], vals[7], vals[8])
	}
	if vals[9] != 5 || vals[11] != true {
		t.Errorf("expected min_stock_threshold=5 and is_active=true, got %v %v", vals[9], vals[11])
	}
}

func TestProductValues_EmptySerialSynthesizesSKU(t *testing.T) {
	p := source.ProductRow{ID: 7, Serial: nstr("")}
	vals := productValues(p, "uuid-2", stamp)
	if vals[1] != "SKU-7" {
		t.Errorf("empty serial should synthesize SKU, got %v", vals[1])
	}
}

func TestInvoiceValues_PaymentStatus(t *testing.T) {
	base := source.TransactionRow{ID: 100, MemberID: 1, Total: sql.NullFloat64{Float64: 150000.75, Valid: true}}

	paid := base
	paid.Status = nstr("paid")
	vals := invoiceValues(paid, "cust-1", "uuid-3", stamp)
	if vals[6] != "paid" {
		t.Errorf("expected paid, got %v", vals[6])
	}

	pending := base
	pending.Status = nstr("pending")
	vals = invoiceValues(pending, "cust-1", "uuid-3", stamp)
	if vals[6] != "unpaid" {
		t.Errorf("expected unpaid, got %v", vals[6])
	}

	// Totals are truncated to whole units, mirrored into grand_total.
	if vals[8] != int64(150000) || vals[11] != int64(150000) {
		t.Errorf("unexpected totals: items=%v grand=%v", vals[8], vals[11])
	}
	if vals[1] != int64(100) {
		t.Errorf("invoice_number should carry the legacy id, got %v", vals[1])
	}
	if vals[2] != "cust-1" {
		t.Errorf("customer_id should be the remapped identifier, got %v", vals[2])
	}
}

func TestInvoiceItemValues_QuantityFallback(t *testing.T) {
	d := source.TransactionDetailRow{TransactionID: 100, ProductID: 5}
	vals := invoiceItemValues(d, "inv-1", "prod-1", "uuid-4", stamp)

	if len(vals) != len(invoiceItemColumns) {
		t.Fatalf("expected %d values, got %d", len(invoiceItemColumns), len(vals))
	}
	if vals[6] != int64(1) {
		t.Errorf("absent quantity should default to 1, got %v", vals[6])
	}

	d.Qty = sql.NullInt64{Int64: 0, Valid: true}
	vals = invoiceItemValues(d, "inv-1", "prod-1", "uuid-4", stamp)
	if vals[6] != int64(1) {
		t.Errorf("zero quantity should default to 1, got %v", vals[6])
	}

	d.Qty = sql.NullInt64{Int64: 3, Valid: true}
	vals = invoiceItemValues(d, "inv-1", "prod-1", "uuid-4", stamp)
	if vals[6] != int64(3) {
		t.Errorf("expected quantity 3, got %v", vals[6])
	}
	if vals[1] != "inv-1" || vals[2] != "prod-1" {
		t.Errorf("expected remapped parent ids, got %v %v", vals[1], vals[2])
	}
}
