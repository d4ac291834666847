package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLReader implements Reader for the legacy MySQL database.
type MySQLReader struct {
	dsn string
	db  *sql.DB
}

// NewMySQLReader creates a reader for the given DSN.
func NewMySQLReader(dsn string) *MySQLReader {
	return &MySQLReader{dsn: dsn}
}

func (r *MySQLReader) Connect(ctx context.Context) error {
	db, err := sql.Open("mysql", r.dsn)
	if err != nil {
		return fmt.Errorf("opening MySQL connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("pinging MySQL: %w", err)
	}
	r.db = db
	return nil
}

func (r *MySQLReader) Employees(ctx context.Context) ([]EmployeeRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_karyawan, nama_karyawan, email, nomor_telepon FROM tbl_karyawan")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableEmployees, err)
	}
	defer rows.Close()

	var out []EmployeeRow
	for rows.Next() {
		var e EmployeeRow
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", TableEmployees, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *MySQLReader) Members(ctx context.Context) ([]MemberRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_member, nama_member, nomor_telepon, alamat FROM tbl_member")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableMembers, err)
	}
	defer rows.Close()

	var out []MemberRow
	for rows.Next() {
		var m MemberRow
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Address); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", TableMembers, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MySQLReader) Products(ctx context.Context) ([]ProductRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_product, seri, nama, deskripsi, satuan, hpp, harga, stok FROM tbl_product")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableProducts, err)
	}
	defer rows.Close()

	var out []ProductRow
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.Serial, &p.Name, &p.Description, &p.Unit,
			&p.CostPrice, &p.SellPrice, &p.Stock); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", TableProducts, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MySQLReader) Transactions(ctx context.Context) ([]TransactionRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_transaksi, id_member, tanggal_transaksi, status_transaksi, "+
			"total_pembelian, total_pembayaran, catatan, lokasi FROM tbl_transaksi")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableTransactions, err)
	}
	defer rows.Close()

	var out []TransactionRow
	for rows.Next() {
		var t TransactionRow
		if err := rows.Scan(&t.ID, &t.MemberID, &t.Date, &t.Status,
			&t.Total, &t.Paid, &t.Notes, &t.Location); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", TableTransactions, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *MySQLReader) TransactionDetails(ctx context.Context) ([]TransactionDetailRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_transaksi, id_product, nama_product, qty, harga, subtotal FROM tbl_detail_transaksi")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableDetails, err)
	}
	defer rows.Close()

	var out []TransactionDetailRow
	for rows.Next() {
		var d TransactionDetailRow
		if err := rows.Scan(&d.TransactionID, &d.ProductID, &d.ProductName,
			&d.Qty, &d.Price, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", TableDetails, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *MySQLReader) RowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdentMySQL(table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", table, err)
	}
	return count, nil
}

func (r *MySQLReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func quoteIdentMySQL(s string) string {
	return "`" + s + "`"
}
