package note

import (
	"context"
	"fmt"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// Listing is one aggregated note with its tree position and the structural
// viewpoint attribution: month and category notes belong to the client
// viewpoint (deletion/change reasons), file notes to the employee viewpoint
// (staff feedback). The mapping is fixed by the note's level, never stored.
type Listing struct {
	Location  domain.NoteLocation
	Viewpoint domain.ActorKind
	Note      *domain.Note
	Viewed    bool // by the requesting actor
}

// ListNotes returns every note in the scoped tree in stable walk order
// (years ascending, months ascending, month notes before category and file
// notes). Year/Month narrow the listing when set.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (_ []Listing, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("note", "list_notes", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	listings := make([]Listing, 0)
	client.EachNote(func(loc domain.NoteLocation, n *domain.Note) {
		if input.Year != 0 && loc.Year != input.Year {
			return
		}
		if input.Month != 0 && loc.Month != input.Month {
			return
		}
		listings = append(listings, Listing{
			Location:  loc,
			Viewpoint: loc.Viewpoint(),
			Note:      n,
			Viewed:    n.ViewedBy(actor.ID),
		})
	})

	return listings, nil
}
