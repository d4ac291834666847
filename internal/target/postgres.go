package target

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter implements Writer for PostgreSQL using pgx.
type PostgresWriter struct {
	connStr string
	schema  string
	pool    *pgxpool.Pool
}

// NewPostgresWriter creates a writer for the given connection string.
func NewPostgresWriter(connStr, schema string) *PostgresWriter {
	if schema == "" {
		schema = "public"
	}
	return &PostgresWriter{connStr: connStr, schema: schema}
}

func (w *PostgresWriter) Connect(ctx context.Context) error {
	cfg, err := pgxpool.ParseConfig(w.connStr)
	if err != nil {
		return fmt.Errorf("parsing connection string: %w", err)
	}
	cfg.MaxConns = 1 // sequential single-writer run
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("pinging PostgreSQL: %w", err)
	}
	w.pool = pool
	return nil
}

func (w *PostgresWriter) Begin(ctx context.Context) (Tx, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &postgresTx{tx: tx, schema: w.schema}, nil
}

func (w *PostgresWriter) RowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s.%s", quoteIdentPg(w.schema), quoteIdentPg(table))
	if err := w.pool.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", table, err)
	}
	return count, nil
}

func (w *PostgresWriter) Close() error {
	if w.pool != nil {
		w.pool.Close()
	}
	return nil
}

type postgresTx struct {
	tx     pgx.Tx
	schema string
}

func (t *postgresTx) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	sql, args := insertSQL(t.schema, table, columns, rows)
	if _, err := t.tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("inserting %d rows into %s: %w", len(rows), table, err)
	}
	return nil
}

func (t *postgresTx) DeferConstraints(ctx context.Context) error {
	if _, err := t.tx.Exec(ctx, "SET CONSTRAINTS ALL DEFERRED"); err != nil {
		return fmt.Errorf("deferring constraints: %w", err)
	}
	return nil
}

func (t *postgresTx) UserTriggers(ctx context.Context, table string) ([]string, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT DISTINCT trigger_name FROM information_schema.triggers
		 WHERE trigger_schema = $1 AND event_object_table = $2
		 AND trigger_name NOT LIKE 'RI\_%'`,
		t.schema, table)
	if err != nil {
		return nil, fmt.Errorf("listing triggers on %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning trigger name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (t *postgresTx) SetTriggerEnabled(ctx context.Context, table, trigger string, enabled bool) error {
	verb := "DISABLE"
	if enabled {
		verb = "ENABLE"
	}
	sql := fmt.Sprintf("ALTER TABLE %s.%s %s TRIGGER %s",
		quoteIdentPg(t.schema), quoteIdentPg(table), verb, quoteIdentPg(trigger))
	if _, err := t.tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("%s trigger %s on %s: %w", strings.ToLower(verb), trigger, table, err)
	}
	return nil
}

func (t *postgresTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// insertSQL builds one parameterized multi-row INSERT statement.
func insertSQL(schema, table string, columns []string, rows [][]any) (string, []any) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdentPg(c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s.%s (%s) VALUES ",
		quoteIdentPg(schema), quoteIdentPg(table), strings.Join(quoted, ", "))

	args := make([]any, 0, len(rows)*len(columns))
	n := 1
	for i, row := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := range columns {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", n)
			n++
		}
		b.WriteByte(')')
		args = append(args, row...)
	}
	return b.String(), args
}

func quoteIdentPg(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
