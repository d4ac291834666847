package source

import (
	"context"
	"fmt"
)

// MockReader is a test double for the Reader interface.
type MockReader struct {
	ConnectErr error

	EmployeeRows []EmployeeRow
	MemberRows   []MemberRow
	ProductRows  []ProductRow
	TxnRows      []TransactionRow
	DetailRows   []TransactionDetailRow

	EmployeesErr error
	MembersErr   error
	ProductsErr  error
	TxnsErr      error
	DetailsErr   error

	RowCounts map[string]int64

	Connected bool
	Closed    bool
}

func (m *MockReader) Connect(_ context.Context) error {
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.Connected = true
	return nil
}

func (m *MockReader) Employees(_ context.Context) ([]EmployeeRow, error) {
	if m.EmployeesErr != nil {
		return nil, m.EmployeesErr
	}
	return m.EmployeeRows, nil
}

func (m *MockReader) Members(_ context.Context) ([]MemberRow, error) {
	if m.MembersErr != nil {
		return nil, m.MembersErr
	}
	return m.MemberRows, nil
}

func (m *MockReader) Products(_ context.Context) ([]ProductRow, error) {
	if m.ProductsErr != nil {
		return nil, m.ProductsErr
	}
	return m.ProductRows, nil
}

func (m *MockReader) Transactions(_ context.Context) ([]TransactionRow, error) {
	if m.TxnsErr != nil {
		return nil, m.TxnsErr
	}
	return m.TxnRows, nil
}

func (m *MockReader) TransactionDetails(_ context.Context) ([]TransactionDetailRow, error) {
	if m.DetailsErr != nil {
		return nil, m.DetailsErr
	}
	return m.DetailRows, nil
}

func (m *MockReader) RowCount(_ context.Context, table string) (int64, error) {
	if m.RowCounts != nil {
		if c, ok := m.RowCounts[table]; ok {
			return c, nil
		}
	}
	return 0, fmt.Errorf("no row count configured for table %s", table)
}

func (m *MockReader) Close() error {
	m.Closed = true
	return nil
}
