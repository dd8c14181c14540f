package claimrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
)

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, c *model.Claim) error
	HasPending(ctx context.Context, tx *sql.Tx, itemID string) (bool, error)
	Get(ctx context.Context, tx *sql.Tx, id string) (*model.Claim, string, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.ClaimStatus, now time.Time) error
	ListPending(ctx context.Context) ([]model.PendingClaim, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, c *model.Claim) error {
	const q = `
INSERT INTO claims (id, item_id, claimant_name, claimant_id, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := tx.ExecContext(ctx, q,
		c.ID, c.ItemID, c.ClaimantName, c.ClaimantID, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *repo) HasPending(ctx context.Context, tx *sql.Tx, itemID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM claims WHERE item_id = $1 AND status = $2)`
	var exists bool
	err := tx.QueryRowContext(ctx, q, itemID, model.ClaimPending).Scan(&exists)
	return exists, err
}

// Get returns the claim together with its item's title, which the resolution
// notifications name.
func (r *repo) Get(ctx context.Context, tx *sql.Tx, id string) (*model.Claim, string, error) {
	const q = `
SELECT c.id, c.item_id, c.claimant_name, c.claimant_id, c.status, c.created_at, c.updated_at, i.title
FROM claims c
JOIN items i ON i.id = c.item_id
WHERE c.id = $1`
	var c model.Claim
	var title string
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.ItemID, &c.ClaimantName, &c.ClaimantID, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &title,
	)
	if err != nil {
		return nil, "", err
	}
	return &c, title, nil
}

func (r *repo) UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.ClaimStatus, now time.Time) error {
	const q = `UPDATE claims SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status, now)
	return err
}

// ListPending is the moderator claim queue, oldest first.
func (r *repo) ListPending(ctx context.Context) ([]model.PendingClaim, error) {
	const q = `
SELECT c.id, c.item_id, c.claimant_name, c.claimant_id, c.status, c.created_at, c.updated_at,
       i.title, i.description, i.type, i.location, i.date
FROM claims c
JOIN items i ON i.id = c.item_id
WHERE c.status = $1
ORDER BY c.created_at ASC`
	rows, err := r.db.QueryContext(ctx, q, model.ClaimPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PendingClaim
	for rows.Next() {
		var pc model.PendingClaim
		if err := rows.Scan(
			&pc.ID, &pc.ItemID, &pc.ClaimantName, &pc.ClaimantID, &pc.Status,
			&pc.CreatedAt, &pc.UpdatedAt,
			&pc.Title, &pc.Description, &pc.Type, &pc.Location, &pc.Date,
		); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
