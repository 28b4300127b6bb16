package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor is a resolved caller identity. Authentication and role resolution
// happen outside the core; operations receive the actor ready-made.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Kind ActorKind `json:"kind"`
	Name string    `json:"name,omitempty"`
}

// NoteView is one viewer ledger entry: who saw the note, as what, and when.
type NoteView struct {
	ViewerID   uuid.UUID `json:"viewerId"`
	ViewerKind ActorKind `json:"viewerKind"`
	ViewedAt   time.Time `json:"viewedAt"`
}

// Note is a free-text annotation attached to a month, category, or file.
// Immutable once created except for the viewer ledger appended to it.
type Note struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Author    Actor      `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	Views     []NoteView `json:"views,omitempty"`

	// ViewedByClient is derived from Views and kept consistent with it:
	// true once any CLIENT-kind ledger entry exists.
	ViewedByClient bool `json:"viewedByClient"`
}

// NewNote creates a note authored by the given actor.
func NewNote(text string, author Actor, at time.Time) *Note {
	return &Note{
		ID:        uuid.New(),
		Text:      text,
		Author:    author,
		CreatedAt: at,
	}
}

// MarkViewed appends a viewer ledger entry for (viewerID, viewerKind).
// Idempotent: returns false without touching the ledger when an entry for the
// same viewer identity and kind already exists.
func (n *Note) MarkViewed(viewerID uuid.UUID, viewerKind ActorKind, at time.Time) bool {
	for _, v := range n.Views {
		if v.ViewerID == viewerID && v.ViewerKind == viewerKind {
			return false
		}
	}
	n.Views = append(n.Views, NoteView{
		ViewerID:   viewerID,
		ViewerKind: viewerKind,
		ViewedAt:   at,
	})
	if viewerKind == ActorKindClient {
		n.ViewedByClient = true
	}
	return true
}

// ViewedBy reports whether the given viewer identity has a ledger entry,
// regardless of viewer kind.
func (n *Note) ViewedBy(viewerID uuid.UUID) bool {
	for _, v := range n.Views {
		if v.ViewerID == viewerID {
			return true
		}
	}
	return false
}

// NoteLocation pins a note to its position in the document tree.
type NoteLocation struct {
	Year     int
	Month    int
	Level    NoteLevel
	Category CategorySelector // zero for month-level notes
	FileName string           // set for file-level notes
}

// Viewpoint returns the structural viewer attribution for this location.
func (l NoteLocation) Viewpoint() ActorKind {
	return l.Level.Viewpoint()
}
