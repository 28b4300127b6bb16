package note

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// MarkAllResult reports how many notes a MarkAllViewed pass actually marked.
type MarkAllResult struct {
	Marked int
	Total  int
}

// MarkAllViewed walks every note in the tree, marking each viewed by the
// calling actor, then persists the whole tree in one write. Repeat-safe:
// once everything is viewed, later calls report Marked=0 and write nothing.
// The write uses the version of the tree loaded at the start of the call;
// a concurrent writer's additions between scan and persist may be
// overwritten (accepted last-write-wins risk at document granularity).
func (s *Service) MarkAllViewed(ctx context.Context, clientID uuid.UUID) (_ MarkAllResult, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("note", "mark_all_viewed", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return MarkAllResult{}, domain.ErrUnauthorized
	}
	if clientID == uuid.Nil {
		return MarkAllResult{}, domain.NewValidationError("client_id", "required")
	}

	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return MarkAllResult{}, fmt.Errorf("load client: %w", err)
	}

	now := time.Now().UTC()
	var result MarkAllResult
	client.EachNote(func(_ domain.NoteLocation, n *domain.Note) {
		result.Total++
		if n.MarkViewed(actor.ID, actor.Kind, now) {
			result.Marked++
		}
	})

	if result.Marked > 0 {
		if err := s.clients.Save(ctx, client); err != nil {
			return MarkAllResult{}, fmt.Errorf("save client: %w", err)
		}
	}

	s.log.InfoContext(ctx, "all notes marked viewed",
		slog.String("client_id", client.ID.String()),
		slog.String("viewer_id", actor.ID.String()),
		slog.Int("marked", result.Marked),
		slog.Int("total", result.Total),
	)

	return result, nil
}
