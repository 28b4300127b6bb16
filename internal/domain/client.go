package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Client is one accounting-firm client: profile, the full per-month document
// tree, and the client-side copies of its task assignments. The whole entity
// is loaded, mutated in memory, and written back as one document.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Documents maps year → month (1–12) → record. Nodes are created lazily
	// and never deleted.
	Documents map[int]map[int]*MonthRecord `json:"documents,omitempty"`

	// EmployeeAssignments is append-only; entries are soft-removed, never cut.
	EmployeeAssignments []*Assignment `json:"employeeAssignments,omitempty"`
}

// Month returns the record for (year, month), or nil if not yet created.
func (c *Client) Month(year, month int) *MonthRecord {
	return c.Documents[year][month]
}

// EnsureMonth returns the record for (year, month), creating a zero-valued one
// (three empty standard categories, empty other list, unlocked, no notes) if
// absent. Returns the record and whether it was created. Idempotent: an
// existing record is reused, never overwritten.
func (c *Client) EnsureMonth(year, month int) (*MonthRecord, bool) {
	if m := c.Month(year, month); m != nil {
		return m, false
	}
	if c.Documents == nil {
		c.Documents = make(map[int]map[int]*MonthRecord)
	}
	if c.Documents[year] == nil {
		c.Documents[year] = make(map[int]*MonthRecord)
	}
	m := &MonthRecord{}
	c.Documents[year][month] = m
	return m, true
}

// EachNote walks every note in the document tree in a stable order: for each
// year ascending, each month ascending: month notes, then per category
// (standard order, then other in insertion order) category notes followed by
// the notes of each file. Missing subtrees contribute nothing.
func (c *Client) EachNote(fn func(loc NoteLocation, n *Note)) {
	for _, year := range sortedKeys(c.Documents) {
		months := c.Documents[year]
		for _, month := range sortedKeys(months) {
			rec := months[month]
			if rec == nil {
				continue
			}
			for _, n := range rec.Notes {
				fn(NoteLocation{Year: year, Month: month, Level: NoteLevelMonth}, n)
			}
			rec.EachCategory(func(sel CategorySelector, cat *Category) {
				for _, n := range cat.Notes {
					fn(NoteLocation{Year: year, Month: month, Level: NoteLevelCategory, Category: sel}, n)
				}
				for _, f := range cat.Files {
					for _, n := range f.Notes {
						fn(NoteLocation{
							Year: year, Month: month,
							Level:    NoteLevelFile,
							Category: sel,
							FileName: f.OriginalName,
						}, n)
					}
				}
			})
		}
	}
}

// ActiveAssignments returns the non-removed assignments for (year, month).
func (c *Client) ActiveAssignments(year, month int) []*Assignment {
	var out []*Assignment
	for _, a := range c.EmployeeAssignments {
		if a.IsActive() && a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out
}

// FindActiveAssignment returns the non-removed assignment for
// (year, month, task), or nil. The invariant allows at most one.
func (c *Client) FindActiveAssignment(year, month int, task TaskKind) *Assignment {
	for _, a := range c.EmployeeAssignments {
		if a.IsActive() && a.Matches(year, month, task) {
			return a
		}
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
