package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNote_MarkViewed_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	author := Actor{ID: uuid.New(), Kind: ActorKindEmployee, Name: "Dana"}
	n := NewNote("please re-upload page 2", author, now)

	viewer := uuid.New()
	if !n.MarkViewed(viewer, ActorKindClient, now) {
		t.Fatal("first view should append a ledger entry")
	}
	if n.MarkViewed(viewer, ActorKindClient, now.Add(time.Minute)) {
		t.Fatal("second view for the same viewer must be a no-op")
	}
	if len(n.Views) != 1 {
		t.Fatalf("ledger entries: got %d, want 1", len(n.Views))
	}
	if !n.ViewedByClient {
		t.Error("client view must set the derived flag")
	}
	if !n.ViewedBy(viewer) {
		t.Error("ViewedBy should see the ledger entry")
	}
}

func TestNote_MarkViewed_SameIDDifferentKind(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	n := NewNote("x", Actor{ID: uuid.New(), Kind: ActorKindAdmin}, now)
	viewer := uuid.New()

	if !n.MarkViewed(viewer, ActorKindEmployee, now) {
		t.Fatal("first entry")
	}
	if n.ViewedByClient {
		t.Error("employee view must not set the client flag")
	}
	// the ledger key is (viewer id, viewer kind)
	if !n.MarkViewed(viewer, ActorKindClient, now) {
		t.Fatal("same id with a different kind is a distinct ledger key")
	}
	if len(n.Views) != 2 {
		t.Fatalf("ledger entries: got %d, want 2", len(n.Views))
	}
	if !n.ViewedByClient {
		t.Error("client view must set the client flag")
	}
}

func TestNoteLevel_Viewpoint(t *testing.T) {
	t.Parallel()

	if got := NoteLevelMonth.Viewpoint(); got != ActorKindClient {
		t.Errorf("month viewpoint: got %s", got)
	}
	if got := NoteLevelCategory.Viewpoint(); got != ActorKindClient {
		t.Errorf("category viewpoint: got %s", got)
	}
	if got := NoteLevelFile.Viewpoint(); got != ActorKindEmployee {
		t.Errorf("file viewpoint: got %s", got)
	}
}
