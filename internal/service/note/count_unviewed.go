package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// CountUnviewed walks the entire document tree and counts notes without a
// ledger entry for the calling actor's identity. A full-tree scan: no
// secondary index is maintained. Missing subtrees contribute zero, never an
// error.
func (s *Service) CountUnviewed(ctx context.Context, clientID uuid.UUID) (_ int, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("note", "count_unviewed", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if clientID == uuid.Nil {
		return 0, domain.NewValidationError("client_id", "required")
	}

	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("load client: %w", err)
	}

	count := 0
	client.EachNote(func(_ domain.NoteLocation, n *domain.Note) {
		if !n.ViewedBy(actor.ID) {
			count++
		}
	})

	return count, nil
}
