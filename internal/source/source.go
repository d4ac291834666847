package source

import (
	"context"
	"database/sql"
)

// Legacy table names in the source schema.
const (
	TableEmployees    = "tbl_karyawan"
	TableMembers      = "tbl_member"
	TableProducts     = "tbl_product"
	TableTransactions = "tbl_transaksi"
	TableDetails      = "tbl_detail_transaksi"
)

// Reader provides read-only access to the legacy database. Each method
// fetches the complete contents of one table as typed rows.
type Reader interface {
	Connect(ctx context.Context) error
	Employees(ctx context.Context) ([]EmployeeRow, error)
	Members(ctx context.Context) ([]MemberRow, error)
	Products(ctx context.Context) ([]ProductRow, error)
	Transactions(ctx context.Context) ([]TransactionRow, error)
	TransactionDetails(ctx context.Context) ([]TransactionDetailRow, error)
	RowCount(ctx context.Context, table string) (int64, error)
	Close() error
}

// EmployeeRow is one row of tbl_karyawan.
type EmployeeRow struct {
	ID    int64
	Name  string
	Email sql.NullString
	Phone sql.NullString
}

// MemberRow is one row of tbl_member.
type MemberRow struct {
	ID      int64
	Name    string
	Phone   sql.NullString
	Address sql.NullString
}

// ProductRow is one row of tbl_product. Most legacy columns are nullable.
type ProductRow struct {
	ID          int64
	Serial      sql.NullString
	Name        sql.NullString
	Description sql.NullString
	Unit        sql.NullString
	CostPrice   sql.NullFloat64
	SellPrice   sql.NullFloat64
	Stock       sql.NullInt64
}

// TransactionRow is one row of tbl_transaksi.
type TransactionRow struct {
	ID       int64
	MemberID int64
	Date     sql.NullTime
	Status   sql.NullString
	Total    sql.NullFloat64
	Paid     sql.NullFloat64
	Notes    sql.NullString
	Location sql.NullString
}

// TransactionDetailRow is one row of tbl_detail_transaksi.
type TransactionDetailRow struct {
	TransactionID int64
	ProductID     int64
	ProductName   sql.NullString
	Qty           sql.NullInt64
	Price         sql.NullFloat64
	Subtotal      sql.NullFloat64
}
