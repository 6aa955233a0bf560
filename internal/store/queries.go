package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("no stored entry")
	ErrQuery    = errors.New("failed to execute query")
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries stores raw JSON payloads. Rows are write-once: the first payload stored for a
// key is kept and later writes for the same key are ignored.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const putBootstrap = `INSERT OR IGNORE INTO bootstrap (bootstrap_id, payload, fetched_at) VALUES (1, ?, ?)`

// PutBootstrap stores the bootstrap payload, reporting whether it was written.
func (q *Queries) PutBootstrap(ctx context.Context, payload []byte) (bool, error) {
	return q.insert(ctx, putBootstrap, payload, time.Now().Unix())
}

const getBootstrap = `SELECT payload FROM bootstrap WHERE bootstrap_id = 1`

func (q *Queries) Bootstrap(ctx context.Context) ([]byte, error) {
	return q.payload(ctx, getBootstrap)
}

const putElementSummary = `INSERT OR IGNORE INTO element_summary (player_id, payload, fetched_at) VALUES (?, ?, ?)`

// PutElementSummary stores a player's history payload, reporting whether it was written.
func (q *Queries) PutElementSummary(ctx context.Context, playerID int, payload []byte) (bool, error) {
	return q.insert(ctx, putElementSummary, playerID, payload, time.Now().Unix())
}

const getElementSummary = `SELECT payload FROM element_summary WHERE player_id = ?`

func (q *Queries) ElementSummary(ctx context.Context, playerID int) ([]byte, error) {
	return q.payload(ctx, getElementSummary, playerID)
}

const countElementSummaries = `SELECT count(*) FROM element_summary`

func (q *Queries) ElementSummaryCount(ctx context.Context) (int, error) {
	var count int
	if err := q.db.QueryRowContext(ctx, countElementSummaries).Scan(&count); err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return count, nil
}

func (q *Queries) insert(ctx context.Context, query string, args ...any) (bool, error) {
	result, errExec := q.db.ExecContext(ctx, query, args...)
	if errExec != nil {
		return false, errors.Join(errExec, ErrQuery)
	}

	affected, errAffected := result.RowsAffected()
	if errAffected != nil {
		return false, errors.Join(errAffected, ErrQuery)
	}

	return affected > 0, nil
}

func (q *Queries) payload(ctx context.Context, query string, args ...any) ([]byte, error) {
	var payload []byte
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Join(err, ErrQuery)
	}

	return payload, nil
}
