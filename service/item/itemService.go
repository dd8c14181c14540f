package itemsvc

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
	itemrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/item"
)

type Item = model.Item

// errors used by controllers

type ErrCode string

const (
	ErrMissingFields ErrCode = "MISSING_FIELDS"
	ErrBadType       ErrCode = "BAD_TYPE"
	ErrBadStatus     ErrCode = "BAD_STATUS"
	ErrNotFound      ErrCode = "NOT_FOUND"
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

type SubmitInput struct {
	Type        string
	Title       string
	Description string
	Location    string
	Date        string
	Contact     string
}

type Service interface {
	// Submit validates a report and stores it awaiting moderation.
	Submit(ctx context.Context, in SubmitInput) (*model.Item, error)

	// SetStatus is the moderator approve/reject decision. It never accepts
	// "claimed"; that status is only reachable through claim approval.
	SetStatus(ctx context.Context, id, status string) error

	Get(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, status, itemType string) ([]model.Item, error)
	ListPending(ctx context.Context) ([]model.Item, error)
}

type service struct {
	r itemrepo.Repo
	n notify.Notifier
}

func New(r itemrepo.Repo, n notify.Notifier) Service { return &service{r: r, n: n} }

func (s *service) Submit(ctx context.Context, in SubmitInput) (*model.Item, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if in.Type == "" || title == "" || description == "" {
		return nil, makeErr(ErrMissingFields)
	}

	typ := model.ItemType(in.Type)
	if typ != model.ItemLost && typ != model.ItemFound {
		return nil, makeErr(ErrBadType)
	}

	now := time.Now().UTC()
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format("2006-01-02")
	}

	item := &model.Item{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		Location:    strings.TrimSpace(in.Location),
		Date:        date,
		Contact:     strings.TrimSpace(in.Contact),
		Status:      model.ItemPendingApproval,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.r.Create(ctx, item); err != nil {
		return nil, err
	}

	s.n.Notify(ctx, notify.Event{
		Type:    notify.TypeSubmission,
		Message: fmt.Sprintf("New %s item submitted: %q", item.Type, item.Title),
	})
	return item, nil
}

func (s *service) SetStatus(ctx context.Context, id, status string) error {
	st := model.ItemStatus(status)
	switch st {
	case model.ItemPendingApproval, model.ItemApproved, model.ItemRejected:
	default:
		return makeErr(ErrBadStatus)
	}

	found, err := s.r.UpdateStatus(ctx, id, st, time.Now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return makeErr(ErrNotFound)
	}

	// Best effort: the notification names the item, but a title lookup
	// failure must not fail the moderation itself.
	title := id
	if item, err := s.r.Get(ctx, id); err == nil {
		title = item.Title
	}
	s.n.Notify(ctx, notify.Event{
		Type:    notify.TypeModeration,
		Message: fmt.Sprintf("Item %q has been %s", title, st),
	})
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.r.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) List(ctx context.Context, status, itemType string) ([]model.Item, error) {
	return s.r.List(ctx, status, itemType)
}

func (s *service) ListPending(ctx context.Context) ([]model.Item, error) {
	return s.r.ListPending(ctx)
}
