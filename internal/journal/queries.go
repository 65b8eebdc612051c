package journal

import (
	"context"
	"time"
)

const recordOperation = `-- name: RecordOperation :exec
INSERT INTO operation (op, bytes, size_after, performed_at)
VALUES (?, ?, ?, ?)
`

func (q *Queries) RecordOperation(ctx context.Context, op string, bytes, sizeAfter int64, performedAt time.Time) error {
	_, err := q.db.ExecContext(ctx, recordOperation, op, bytes, sizeAfter, performedAt)
	return err
}

const recentOperations = `-- name: RecentOperations :many
SELECT id, op, bytes, size_after, performed_at
FROM operation
ORDER BY performed_at DESC, id DESC
LIMIT ?
`

func (q *Queries) RecentOperations(ctx context.Context, limit int) ([]*Operation, error) {
	rows, err := q.db.QueryContext(ctx, recentOperations, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Operation
	for rows.Next() {
		var i Operation
		if err := rows.Scan(
			&i.ID,
			&i.Op,
			&i.Bytes,
			&i.SizeAfter,
			&i.PerformedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const recentOperationsByOp = `-- name: RecentOperationsByOp :many
SELECT id, op, bytes, size_after, performed_at
FROM operation
WHERE op = ?
ORDER BY performed_at DESC, id DESC
LIMIT ?
`

func (q *Queries) RecentOperationsByOp(ctx context.Context, op string, limit int) ([]*Operation, error) {
	rows, err := q.db.QueryContext(ctx, recentOperationsByOp, op, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Operation
	for rows.Next() {
		var i Operation
		if err := rows.Scan(
			&i.ID,
			&i.Op,
			&i.Bytes,
			&i.SizeAfter,
			&i.PerformedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const operationCount = `-- name: OperationCount :one
SELECT COUNT(*) FROM operation
`

func (q *Queries) OperationCount(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, operationCount)
	var count int64
	err := row.Scan(&count)
	return count, err
}
