// service/item/item_service_test.go
package itemsvc_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
	"github.com/shubhranshu-pandey/Lost-and-Found/notify"
	itemsvc "github.com/shubhranshu-pandey/Lost-and-Found/service/item"
)

type repoMock struct {
	createFn       func(ctx context.Context, i *model.Item) error
	getFn          func(ctx context.Context, id string) (*model.Item, error)
	listFn         func(ctx context.Context, status, itemType string) ([]model.Item, error)
	listPendingFn  func(ctx context.Context) ([]model.Item, error)
	updateStatusFn func(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, i *model.Item) error { return m.createFn(ctx, i) }
func (m *repoMock) Get(ctx context.Context, id string) (*model.Item, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, status, itemType string) ([]model.Item, error) {
	return m.listFn(ctx, status, itemType)
}
func (m *repoMock) ListPending(ctx context.Context) ([]model.Item, error) {
	return m.listPendingFn(ctx)
}
func (m *repoMock) UpdateStatus(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error) {
	return m.updateStatusFn(ctx, id, status, now)
}
func (m *repoMock) GetStatusAndTitle(ctx context.Context, tx *sql.Tx, id string) (model.ItemStatus, string, error) {
	return "", "", nil
}
func (m *repoMock) MarkClaimed(ctx context.Context, tx *sql.Tx, id, claimantID string, now time.Time) error {
	return nil
}

type notifierRecorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *notifierRecorder) Notify(_ context.Context, e notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func TestSubmit_Validation(t *testing.T) {
	s := itemsvc.New(&repoMock{}, &notifierRecorder{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   itemsvc.SubmitInput
		want itemsvc.ErrCode
	}{
		{"missing type", itemsvc.SubmitInput{Title: "Keys", Description: "Blue keychain"}, itemsvc.ErrMissingFields},
		{"missing title", itemsvc.SubmitInput{Type: "lost", Description: "Blue keychain"}, itemsvc.ErrMissingFields},
		{"missing description", itemsvc.SubmitInput{Type: "lost", Title: "Keys"}, itemsvc.ErrMissingFields},
		{"blank title", itemsvc.SubmitInput{Type: "lost", Title: "   ", Description: "Blue keychain"}, itemsvc.ErrMissingFields},
		{"blank description", itemsvc.SubmitInput{Type: "found", Title: "Keys", Description: " \t "}, itemsvc.ErrMissingFields},
		{"unknown type", itemsvc.SubmitInput{Type: "stolen", Title: "Keys", Description: "Blue keychain"}, itemsvc.ErrBadType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Submit(ctx, tc.in); itemsvc.Code(err) != tc.want {
				t.Fatalf("got err %v; want code %s", err, tc.want)
			}
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	var stored []*model.Item
	m := &repoMock{
		createFn: func(ctx context.Context, i *model.Item) error {
			stored = append(stored, i)
			return nil
		},
	}
	n := &notifierRecorder{}
	s := itemsvc.New(m, n)
	ctx := context.Background()

	first, err := s.Submit(ctx, itemsvc.SubmitInput{
		Type: "lost", Title: "  Umbrella  ", Description: "Black, long handle",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if first.Status != model.ItemPendingApproval {
		t.Errorf("status = %s; want pending_approval", first.Status)
	}
	if first.ID == "" {
		t.Error("expected a generated id")
	}
	if first.Title != "Umbrella" {
		t.Errorf("title = %q; want trimmed %q", first.Title, "Umbrella")
	}
	if first.Date == "" {
		t.Error("expected date to default to today")
	}
	if first.ClaimantID != nil {
		t.Errorf("claimant_id = %v; want nil", *first.ClaimantID)
	}

	second, err := s.Submit(ctx, itemsvc.SubmitInput{
		Type: "found", Title: "Umbrella", Description: "Black, long handle",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if second.ID == first.ID {
		t.Error("expected unique ids for separate submissions")
	}

	if len(stored) != 2 {
		t.Fatalf("stored %d items; want 2", len(stored))
	}
	if len(n.events) != 2 || n.events[0].Type != notify.TypeSubmission {
		t.Fatalf("notifications = %v; want two submission events", n.events)
	}
}

func TestSetStatus_RejectsClaimedAndUnknown(t *testing.T) {
	s := itemsvc.New(&repoMock{}, &notifierRecorder{})
	ctx := context.Background()

	// claimed is only reachable through claim approval
	for _, status := range []string{"claimed", "lost", ""} {
		if err := s.SetStatus(ctx, "some-id", status); itemsvc.Code(err) != itemsvc.ErrBadStatus {
			t.Errorf("SetStatus(%q) = %v; want BAD_STATUS", status, err)
		}
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	m := &repoMock{
		updateStatusFn: func(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error) {
			return false, nil
		},
	}
	s := itemsvc.New(m, &notifierRecorder{})

	if err := s.SetStatus(context.Background(), "missing", "approved"); itemsvc.Code(err) != itemsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestSetStatus_Success(t *testing.T) {
	var gotStatus model.ItemStatus
	m := &repoMock{
		updateStatusFn: func(ctx context.Context, id string, status model.ItemStatus, now time.Time) (bool, error) {
			gotStatus = status
			return true, nil
		},
		getFn: func(ctx context.Context, id string) (*model.Item, error) {
			return &model.Item{ID: id, Title: "Umbrella"}, nil
		},
	}
	n := &notifierRecorder{}
	s := itemsvc.New(m, n)

	if err := s.SetStatus(context.Background(), "item-1", "approved"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if gotStatus != model.ItemApproved {
		t.Errorf("repo got status %s; want approved", gotStatus)
	}
	if len(n.events) != 1 || n.events[0].Type != notify.TypeModeration {
		t.Fatalf("notifications = %v; want one moderation event", n.events)
	}
}

func TestGet_MapsNoRows(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id string) (*model.Item, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := itemsvc.New(m, &notifierRecorder{})

	if _, err := s.Get(context.Background(), "missing"); itemsvc.Code(err) != itemsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}
