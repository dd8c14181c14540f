package itemrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
	itemrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/item"
	"github.com/shubhranshu-pandey/Lost-and-Found/util/database"
)

func newItem(typ model.ItemType, title string, createdAt time.Time) *model.Item {
	return &model.Item{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: "description of " + title,
		Status:      model.ItemPendingApproval,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestCreateAndGet(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)
	ctx := context.Background()

	item := newItem(model.ItemLost, "Wallet", time.Now().UTC())
	item.Location = "Library"
	item.Contact = "me@example.com"
	if err := r.Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := r.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Wallet" || got.Location != "Library" || got.Contact != "me@example.com" {
		t.Errorf("got %+v; want fields roundtripped", got)
	}
	if got.Status != model.ItemPendingApproval {
		t.Errorf("status = %s; want pending_approval", got.Status)
	}
	if got.ClaimantID != nil {
		t.Errorf("claimant_id = %v; want nil", *got.ClaimantID)
	}
}

func TestGet_Missing(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)

	if _, err := r.Get(context.Background(), "nope"); err != sql.ErrNoRows {
		t.Fatalf("got %v; want sql.ErrNoRows", err)
	}
}

func TestList_FiltersAndOrder(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)
	ctx := context.Background()

	base := time.Now().UTC()
	oldest := newItem(model.ItemLost, "Oldest", base.Add(-2*time.Hour))
	middle := newItem(model.ItemFound, "Middle", base.Add(-time.Hour))
	newest := newItem(model.ItemLost, "Newest", base)
	for _, it := range []*model.Item{oldest, middle, newest} {
		if err := r.Create(ctx, it); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := r.UpdateStatus(ctx, middle.ID, model.ItemApproved, base); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	all, err := r.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d items; want 3", len(all))
	}
	// Most recent first.
	if all[0].Title != "Newest" || all[2].Title != "Oldest" {
		t.Errorf("order = [%s %s %s]; want newest first", all[0].Title, all[1].Title, all[2].Title)
	}

	lost, err := r.List(ctx, "", "lost")
	if err != nil {
		t.Fatalf("List(type=lost): %v", err)
	}
	if len(lost) != 2 {
		t.Errorf("got %d lost items; want 2", len(lost))
	}

	approved, err := r.List(ctx, "approved", "")
	if err != nil {
		t.Fatalf("List(status=approved): %v", err)
	}
	if len(approved) != 1 || approved[0].Title != "Middle" {
		t.Errorf("got %v; want only Middle", approved)
	}

	both, err := r.List(ctx, "approved", "lost")
	if err != nil {
		t.Fatalf("List(status,type): %v", err)
	}
	if len(both) != 0 {
		t.Errorf("got %d; want 0 approved lost items", len(both))
	}
}

func TestListPending_OldestFirst(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)
	ctx := context.Background()

	base := time.Now().UTC()
	second := newItem(model.ItemLost, "Second", base)
	first := newItem(model.ItemLost, "First", base.Add(-time.Hour))
	approved := newItem(model.ItemLost, "Approved", base.Add(-2*time.Hour))
	for _, it := range []*model.Item{second, first, approved} {
		if err := r.Create(ctx, it); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := r.UpdateStatus(ctx, approved.ID, model.ItemApproved, base); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	pending, err := r.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("got %d pending; want 2", len(pending))
	}
	// FIFO review queue.
	if pending[0].Title != "First" || pending[1].Title != "Second" {
		t.Errorf("order = [%s %s]; want oldest first", pending[0].Title, pending[1].Title)
	}
}

func TestUpdateStatus_ReportsMatch(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)
	ctx := context.Background()

	item := newItem(model.ItemFound, "Badge", time.Now().UTC())
	if err := r.Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := time.Now().UTC().Add(time.Minute)
	found, err := r.UpdateStatus(ctx, item.ID, model.ItemRejected, later)
	if err != nil || !found {
		t.Fatalf("UpdateStatus = (%v, %v); want (true, nil)", found, err)
	}

	got, err := r.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != model.ItemRejected {
		t.Errorf("status = %s; want rejected", got.Status)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("updated_at %v not after created_at %v", got.UpdatedAt, got.CreatedAt)
	}

	found, err = r.UpdateStatus(ctx, "missing", model.ItemApproved, later)
	if err != nil || found {
		t.Fatalf("UpdateStatus(missing) = (%v, %v); want (false, nil)", found, err)
	}
}

func TestMarkClaimed(t *testing.T) {
	db := database.NewTestDB(t)
	r := itemrepo.New(db)
	ctx := context.Background()

	item := newItem(model.ItemLost, "Phone", time.Now().UTC())
	if err := r.Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	if err := r.MarkClaimed(ctx, tx, item.ID, "user-7", time.Now().UTC()); err != nil {
		t.Fatalf("MarkClaimed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got, err := r.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != model.ItemClaimed {
		t.Errorf("status = %s; want claimed", got.Status)
	}
	if got.ClaimantID == nil || *got.ClaimantID != "user-7" {
		t.Errorf("claimant_id = %v; want user-7", got.ClaimantID)
	}
}
