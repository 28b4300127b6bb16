package note

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// MarkViewed appends a (viewer id, viewer kind) ledger entry to one note.
// Idempotent: a repeat call for the same viewer identity returns false and
// persists nothing. Safe to retry.
func (s *Service) MarkViewed(ctx context.Context, input MarkViewedInput) (_ bool, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("note", "mark_viewed", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return false, fmt.Errorf("load client: %w", err)
	}

	var target *domain.Note
	client.EachNote(func(_ domain.NoteLocation, n *domain.Note) {
		if n.ID == input.NoteID {
			target = n
		}
	})
	if target == nil {
		return false, fmt.Errorf("note %s: %w", input.NoteID, domain.ErrNotFound)
	}

	marked := target.MarkViewed(actor.ID, actor.Kind, time.Now().UTC())
	if !marked {
		return false, nil
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return false, fmt.Errorf("save client: %w", err)
	}

	s.log.InfoContext(ctx, "note marked viewed",
		slog.String("client_id", client.ID.String()),
		slog.String("note_id", target.ID.String()),
		slog.String("viewer_id", actor.ID.String()),
		slog.String("viewer_kind", actor.Kind.String()),
	)

	return true, nil
}
