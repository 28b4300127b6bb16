package document

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// MonthSummary is one row of the dashboard overview.
type MonthSummary struct {
	Month             int
	Locked            bool
	WasLockedOnce     bool
	FileCounts        map[string]int // keyed by category selector string
	ActiveAssignments int
	UnviewedNotes     int // unviewed by the requesting actor
}

// Overview summarizes one client-year for the dashboard: per created month,
// file counts per category, lock flags, active assignment count, and the
// number of notes the requesting actor has not viewed. Months never created
// are absent from the result.
func (s *Service) Overview(ctx context.Context, input OverviewInput) (_ []MonthSummary, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "overview", err, start) }()

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

	unviewed := make(map[int]int)
	client.EachNote(func(loc domain.NoteLocation, n *domain.Note) {
		if loc.Year == input.Year && !n.ViewedBy(actor.ID) {
			unviewed[loc.Month]++
		}
	})

	summaries := make([]MonthSummary, 0, len(client.Documents[input.Year]))
	for month, record := range client.Documents[input.Year] {
		if record == nil {
			continue
		}
		summary := MonthSummary{
			Month:             month,
			Locked:            record.Locked,
			WasLockedOnce:     record.WasLockedOnce,
			FileCounts:        make(map[string]int),
			ActiveAssignments: len(client.ActiveAssignments(input.Year, month)),
			UnviewedNotes:     unviewed[month],
		}
		record.EachCategory(func(sel domain.CategorySelector, c *domain.Category) {
			summary.FileCounts[sel.String()] = len(c.Files)
		})
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Month < summaries[j].Month })

	return summaries, nil
}
