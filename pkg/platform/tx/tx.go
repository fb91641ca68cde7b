package tx

import (
	"context"
	"database/sql"
	"sync"
)

type ctxKey struct{}

var txKey = ctxKey{}

// Execer is the subset of *sql.DB and *sql.Tx used by stores.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Use returns the transaction carried by ctx, falling back to db.
func Use(ctx context.Context, db *sql.DB) Execer {
	if tx, ok := From(ctx); ok {
		return tx
	}
	return db
}

// Run executes fn inside a transaction, committing on success.
// A transaction already present in ctx is reused.
func Run(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if _, ok := From(ctx); ok {
		return fn(ctx)
	}
	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(WithTx(ctx, t)); err != nil {
		_ = t.Rollback()
		return err
	}
	return t.Commit()
}

// Manager runs units of work against one database. A Manager without a
// database serializes units in process, which is what in-memory stores need.
type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// RunInTx executes fn as one unit of work.
func (m *Manager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.db != nil {
		return Run(ctx, m.db, fn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
