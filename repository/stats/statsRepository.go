package statsrepo

import (
	"context"
	"database/sql"
)

type Repo interface {
	ItemCounts(ctx context.Context) (map[string]int64, error)
	ClaimCounts(ctx context.Context) (map[string]int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) ItemCounts(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, `SELECT status, COUNT(*) FROM items GROUP BY status`)
}

func (r *repo) ClaimCounts(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, `SELECT status, COUNT(*) FROM claims GROUP BY status`)
}

func (r *repo) countByStatus(ctx context.Context, q string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
