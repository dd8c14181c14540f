package itemrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
)

type Repo interface {
	Create(ctx context.Context, i *model.Item) error
	Get(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, status, itemType string) ([]model.Item, error)
	ListPending(ctx context.Context) ([]model.Item, error)
	UpdateStatus(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error)

	// Claim-resolution path; runs inside the claim transaction.
	GetStatusAndTitle(ctx context.Context, tx *sql.Tx, id string) (model.ItemStatus, string, error)
	MarkClaimed(ctx context.Context, tx *sql.Tx, id, claimantID string, now time.Time) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const itemCols = `id, type, title, description, location, date, contact, status, claimant_id, created_at, updated_at`

func (r *repo) Create(ctx context.Context, i *model.Item) error {
	const q = `
INSERT INTO items (` + itemCols + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.ExecContext(ctx, q,
		i.ID, i.Type, i.Title, i.Description, i.Location, i.Date, i.Contact,
		i.Status, i.ClaimantID, i.CreatedAt, i.UpdatedAt,
	)
	return err
}

func (r *repo) Get(ctx context.Context, id string) (*model.Item, error) {
	const q = `SELECT ` + itemCols + ` FROM items WHERE id = $1`
	return scanItem(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) List(ctx context.Context, status, itemType string) ([]model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR type = $2)
ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, status, itemType)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

// ListPending is the moderator review queue, oldest first.
func (r *repo) ListPending(ctx context.Context) ([]model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE status = $1
ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q, model.ItemPendingApproval)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

// UpdateStatus reports whether a row matched, so a missing item can be told
// apart from a no-op.
func (r *repo) UpdateStatus(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error) {
	const q = `UPDATE items SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status, now)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func (r *repo) GetStatusAndTitle(ctx context.Context, tx *sql.Tx, id string) (model.ItemStatus, string, error) {
	const q = `SELECT status, title FROM items WHERE id = $1`
	var status model.ItemStatus
	var title string
	err := tx.QueryRowContext(ctx, q, id).Scan(&status, &title)
	return status, title, err
}

func (r *repo) MarkClaimed(ctx context.Context, tx *sql.Tx, id, claimantID string, now time.Time) error {
	const q = `
UPDATE items
SET status = $2, claimant_id = $3, updated_at = $4
WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, model.ItemClaimed, claimantID, now)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	var i model.Item
	var claimant sql.NullString
	if err := row.Scan(
		&i.ID, &i.Type, &i.Title, &i.Description, &i.Location, &i.Date, &i.Contact,
		&i.Status, &claimant, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if claimant.Valid {
		i.ClaimantID = &claimant.String
	}
	return &i, nil
}

func collectItems(rows *sql.Rows) ([]model.Item, error) {
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}
