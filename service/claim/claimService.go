package claimsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
	"github.com/shubhranshu-pandey/Lost-and-Found/notify"
	claimrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/claim"
	itemrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/item"
	"github.com/shubhranshu-pandey/Lost-and-Found/util/database"
)

// errors used by controllers

type ErrCode string

const (
	ErrMissingFields    ErrCode = "MISSING_FIELDS"
	ErrNotAvailable     ErrCode = "NOT_AVAILABLE"
	ErrPendingExists    ErrCode = "PENDING_EXISTS"
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrAlreadyProcessed ErrCode = "ALREADY_PROCESSED"
	ErrBadAction        ErrCode = "BAD_ACTION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Request files a claim against an approved item. At most one pending
	// claim may exist per item; the store's partial unique index backs the
	// check, so a concurrent duplicate resolves to the same conflict.
	Request(ctx context.Context, itemID, claimantID, claimantName string) (string, error)

	// Resolve applies the moderator decision exactly once. Approving a claim
	// also flips the item to claimed and records the claimant; both writes
	// commit or roll back together.
	Resolve(ctx context.Context, claimID, action string) error

	ListPending(ctx context.Context) ([]model.PendingClaim, error)
}

type service struct {
	db *sql.DB
	cr claimrepo.Repo
	ir itemrepo.Repo
	n  notify.Notifier
}

func New(db *sql.DB, cr claimrepo.Repo, ir itemrepo.Repo, n notify.Notifier) Service {
	return &service{db: db, cr: cr, ir: ir, n: n}
}

func (s *service) Request(ctx context.Context, itemID, claimantID, claimantName string) (_ string, err error) {
	claimantID = strings.TrimSpace(claimantID)
	claimantName = strings.TrimSpace(claimantName)
	if claimantID == "" || claimantName == "" {
		return "", makeErr(ErrMissingFields)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	status, title, err := s.ir.GetStatusAndTitle(ctx, tx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", makeErr(ErrNotAvailable)
	}
	if err != nil {
		return "", err
	}
	if status != model.ItemApproved {
		return "", makeErr(ErrNotAvailable)
	}

	pending, err := s.cr.HasPending(ctx, tx, itemID)
	if err != nil {
		return "", err
	}
	if pending {
		return "", makeErr(ErrPendingExists)
	}

	now := time.Now().UTC()
	claim := &model.Claim{
		ID:           uuid.NewString(),
		ItemID:       itemID,
		ClaimantName: claimantName,
		ClaimantID:   claimantID,
		Status:       model.ClaimPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.cr.Insert(ctx, tx, claim); err != nil {
		if database.IsUniqueViolation(err) {
			err = makeErr(ErrPendingExists)
		}
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}

	s.n.Notify(ctx, notify.Event{
		Type:    notify.TypeClaimRequest,
		Message: fmt.Sprintf("New claim request for %q by %s", title, claimantName),
	})
	return claim.ID, nil
}

func (s *service) Resolve(ctx context.Context, claimID, action string) (err error) {
	if action != "approve" && action != "reject" {
		return makeErr(ErrBadAction)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	claim, title, err := s.cr.Get(ctx, tx, claimID)
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound)
	}
	if err != nil {
		return err
	}
	if claim.Status != model.ClaimPending {
		return makeErr(ErrAlreadyProcessed)
	}

	now := time.Now().UTC()
	if action == "reject" {
		if err = s.cr.UpdateStatus(ctx, tx, claimID, model.ClaimRejected, now); err != nil {
			return err
		}
		if err = tx.Commit(); err != nil {
			return err
		}
		s.n.Notify(ctx, notify.Event{
			Type:    notify.TypeClaimRejected,
			Message: fmt.Sprintf("Claim rejected: %q claim by %s was rejected", title, claim.ClaimantName),
		})
		return nil
	}

	if err = s.cr.UpdateStatus(ctx, tx, claimID, model.ClaimApproved, now); err != nil {
		return err
	}
	if err = s.ir.MarkClaimed(ctx, tx, claim.ItemID, claim.ClaimantID, now); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	s.n.Notify(ctx, notify.Event{
		Type:    notify.TypeClaimApproved,
		Message: fmt.Sprintf("Claim approved: %q claimed by %s", title, claim.ClaimantName),
	})
	return nil
}

func (s *service) ListPending(ctx context.Context) ([]model.PendingClaim, error) {
	return s.cr.ListPending(ctx)
}
