// Package journal records every note file mutation in a local sqlite
// database so past appends and clears can be listed later.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaDefinition = `
CREATE TABLE IF NOT EXISTS operation (
	id INTEGER PRIMARY KEY,
	op TEXT NOT NULL,
	bytes INTEGER NOT NULL,
	size_after INTEGER NOT NULL,
	performed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_operation_performed_at ON operation (performed_at);
`

// Operation is one recorded note file mutation.
type Operation struct {
	ID          int64
	Op          string
	Bytes       int64
	SizeAfter   int64
	PerformedAt time.Time
}

// DBTX is the minimal database surface the queries run against.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries runs journal statements against a DBTX.
type Queries struct {
	db DBTX
}

// New creates Queries over db.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// InitializeDatabase creates the journal schema if missing.
func (q *Queries) InitializeDatabase(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, schemaDefinition)
	return err
}

// Journal owns the sqlite handle behind the operation log.
type Journal struct {
	db      *sql.DB
	queries *Queries
}

// Open opens (creating if needed) the journal database at path.
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	queries := New(db)
	if err := queries.InitializeDatabase(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{db: db, queries: queries}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores one mutation.
func (j *Journal) Record(ctx context.Context, op string, bytes, sizeAfter int64) error {
	return j.queries.RecordOperation(ctx, op, bytes, sizeAfter, time.Now().UTC())
}

// Recent returns up to limit operations, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]*Operation, error) {
	return j.queries.RecentOperations(ctx, limit)
}

// RecentByOp returns up to limit operations of one kind, newest first.
func (j *Journal) RecentByOp(ctx context.Context, op string, limit int) ([]*Operation, error) {
	return j.queries.RecentOperationsByOp(ctx, op, limit)
}

// Count returns the total number of recorded operations.
func (j *Journal) Count(ctx context.Context) (int64, error) {
	return j.queries.OperationCount(ctx)
}
