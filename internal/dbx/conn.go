package dbx

import (
	"context"
	"database/sql"
	"sync"
)

// Conn owns the one database connection of the process. Every operation
// holds mu for its full duration, so no two units of work ever interleave,
// including work issued by different stores.
type Conn struct {
	mu sync.Mutex
	db *sql.DB
}

// NewConn pins the pool to a single connection and wraps it.
func NewConn(db *sql.DB) *Conn {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return &Conn{db: db}
}

// WithTx acquires the exclusive lock and runs fn inside one transaction.
func (c *Conn) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return WithTx(ctx, c.db, nil, fn)
}

// WithDB acquires the exclusive lock and hands fn the raw handle. It is meant
// for work that manages its own transactions, such as schema migrations.
func (c *Conn) WithDB(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn(ctx, c.db)
}

// Close waits for the running operation, if any, and closes the handle.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Close()
}
