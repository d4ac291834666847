package target

import (
	"context"
	"fmt"
)

// MockWriter is a test double for the Writer interface. Rows only become
// visible in Tables after the transaction commits.
type MockWriter struct {
	ConnectErr error
	BeginErr   error

	// Tables holds committed rows per table.
	Tables map[string][][]any
	// InsertCalls counts Insert statements per table across all
	// transactions, committed or not.
	InsertCalls map[string]int

	// InsertErrs makes Insert fail for a given table.
	InsertErrs map[string]error
	// Triggers configures UserTriggers results per table.
	Triggers map[string][]string
	// TriggerErr makes every SetTriggerEnabled call fail.
	TriggerErr error

	// ToggleLog records trigger toggles as "disable name" / "enable name".
	ToggleLog []string

	RowCounts map[string]int64

	Connected bool
	Closed    bool
	Commits   int
	Rollbacks int
}

func (m *MockWriter) Connect(_ context.Context) error {
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.Connected = true
	return nil
}

func (m *MockWriter) Begin(_ context.Context) (Tx, error) {
	if m.BeginErr != nil {
		return nil, m.BeginErr
	}
	return &mockTx{writer: m, staged: make(map[string][][]any)}, nil
}

func (m *MockWriter) RowCount(_ context.Context, table string) (int64, error) {
	if m.RowCounts != nil {
		if c, ok := m.RowCounts[table]; ok {
			return c, nil
		}
	}
	if m.Tables != nil {
		return int64(len(m.Tables[table])), nil
	}
	return 0, fmt.Errorf("no row count configured for table %s", table)
}

func (m *MockWriter) Close() error {
	m.Closed = true
	return nil
}

type mockTx struct {
	writer *MockWriter
	staged map[string][][]any
	done   bool
}

func (t *mockTx) Insert(_ context.Context, table string, columns []string, rows [][]any) error {
	if t.writer.InsertCalls == nil {
		t.writer.InsertCalls = make(map[string]int)
	}
	t.writer.InsertCalls[table]++

	if err := t.writer.InsertErrs[table]; err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row has %d values for %d columns", len(row), len(columns))
		}
	}
	t.staged[table] = append(t.staged[table], rows...)
	return nil
}

func (t *mockTx) DeferConstraints(_ context.Context) error {
	return nil
}

func (t *mockTx) UserTriggers(_ context.Context, table string) ([]string, error) {
	return t.writer.Triggers[table], nil
}

func (t *mockTx) SetTriggerEnabled(_ context.Context, _, trigger string, enabled bool) error {
	if t.writer.TriggerErr != nil {
		return t.writer.TriggerErr
	}
	verb := "disable"
	if enabled {
		verb = "enable"
	}
	t.writer.ToggleLog = append(t.writer.ToggleLog, verb+" "+trigger)
	return nil
}

func (t *mockTx) Commit(_ context.Context) error {
	if t.done {
		return fmt.Errorf("transaction already finished")
	}
	t.done = true
	if t.writer.Tables == nil {
		t.writer.Tables = make(map[string][][]any)
	}
	for table, rows := range t.staged {
		t.writer.Tables[table] = append(t.writer.Tables[table], rows...)
	}
	t.writer.Commits++
	return nil
}

func (t *mockTx) Rollback(_ context.Context) error {
	if t.done {
		return nil // rollback after commit is a no-op, like pgx
	}
	t.done = true
	t.writer.Rollbacks++
	return nil
}
