package domain

import (
	"time"

	"github.com/google/uuid"
)

// File is one uploaded document inside a category. The blob itself lives in
// external object storage; the tree only keeps the descriptor.
type File struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	OriginalName string    `json:"originalName"`
	UploadedBy   Actor     `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType,omitempty"`
	Notes        []*Note   `json:"notes,omitempty"`
}

// CategorySelector identifies either a standard category or a named entry of
// the month's "other" list.
type CategorySelector struct {
	Kind CategoryKind `json:"kind"`
	Name string       `json:"name,omitempty"` // set only for Kind == CategoryOther
}

// SelectStandard builds a selector for one of sales/purchase/bank.
func SelectStandard(kind CategoryKind) CategorySelector {
	return CategorySelector{Kind: kind}
}

// SelectOther builds a selector for a caller-named "other" category.
func SelectOther(name string) CategorySelector {
	return CategorySelector{Kind: CategoryOther, Name: name}
}

func (s CategorySelector) Validate() error {
	if !s.Kind.IsValid() {
		return NewValidationError("category", "unknown category kind")
	}
	if s.Kind == CategoryOther && s.Name == "" {
		return NewValidationError("category", "other category requires a name")
	}
	if s.Kind != CategoryOther && s.Name != "" {
		return NewValidationError("category", "standard category takes no name")
	}
	return nil
}

func (s CategorySelector) String() string {
	if s.Kind == CategoryOther {
		return "OTHER/" + s.Name
	}
	return s.Kind.String()
}

// Category is one document bucket: its files, its reason notes, and its own
// lock state. The lock fields are independently settable but are forced to the
// month's value whenever a month-level cascade runs.
type Category struct {
	Files []*File `json:"files,omitempty"`
	Notes []*Note `json:"notes,omitempty"`

	Locked        bool       `json:"isLocked"`
	WasLockedOnce bool       `json:"wasLockedOnce"`
	LockedBy      *Actor     `json:"lockedBy,omitempty"`
	LockChangedAt *time.Time `json:"lockChangedAt,omitempty"`
}

// SetLock transitions the node to the requested lock state, stamping lock
// metadata. Returns false when the node is already in the target state (no
// stamp). WasLockedOnce flips true on the first Unlocked→Locked transition and
// never reverts.
func (c *Category) SetLock(locked bool, actor Actor, at time.Time) bool {
	if c.Locked == locked {
		return false
	}
	c.Locked = locked
	if locked {
		c.WasLockedOnce = true
	}
	c.LockedBy = &actor
	c.LockChangedAt = &at
	return true
}

// FileByName returns the file with the given original name and its index,
// or (nil, -1).
func (c *Category) FileByName(name string) (*File, int) {
	for i, f := range c.Files {
		if f.OriginalName == name {
			return f, i
		}
	}
	return nil, -1
}

// RemoveFileAt removes and returns the file at index i.
func (c *Category) RemoveFileAt(i int) *File {
	f := c.Files[i]
	c.Files = append(c.Files[:i], c.Files[i+1:]...)
	return f
}

// OtherCategory is a caller-named bucket in the month's open-ended list.
type OtherCategory struct {
	Name     string   `json:"name"`
	Document Category `json:"document"`
}

// MonthRecord holds one client-month of the document tree: the three standard
// categories, the open-ended other list, the month's own lock state, and
// month-level notes.
type MonthRecord struct {
	Sales    Category         `json:"sales"`
	Purchase Category         `json:"purchase"`
	Bank     Category         `json:"bank"`
	Other    []*OtherCategory `json:"other,omitempty"`

	Locked        bool       `json:"isLocked"`
	WasLockedOnce bool       `json:"wasLockedOnce"`
	LockedBy      *Actor     `json:"lockedBy,omitempty"`
	LockChangedAt *time.Time `json:"lockChangedAt,omitempty"`

	Notes []*Note `json:"notes,omitempty"`
}

// Category resolves a selector to the category node, or nil when an "other"
// entry with that name does not exist.
func (m *MonthRecord) Category(sel CategorySelector) *Category {
	switch sel.Kind {
	case CategorySales:
		return &m.Sales
	case CategoryPurchase:
		return &m.Purchase
	case CategoryBank:
		return &m.Bank
	case CategoryOther:
		for _, o := range m.Other {
			if o.Name == sel.Name {
				return &o.Document
			}
		}
	}
	return nil
}

// EnsureCategory resolves a selector, creating a missing "other" entry with
// zero-valued lock state. Returns the node and whether it was created.
func (m *MonthRecord) EnsureCategory(sel CategorySelector) (*Category, bool) {
	if c := m.Category(sel); c != nil {
		return c, false
	}
	if sel.Kind != CategoryOther {
		return nil, false
	}
	o := &OtherCategory{Name: sel.Name}
	m.Other = append(m.Other, o)
	return &o.Document, true
}

// EachCategory visits every category under the month: the three standard ones
// first, then every "other" entry in order.
func (m *MonthRecord) EachCategory(fn func(sel CategorySelector, c *Category)) {
	fn(SelectStandard(CategorySales), &m.Sales)
	fn(SelectStandard(CategoryPurchase), &m.Purchase)
	fn(SelectStandard(CategoryBank), &m.Bank)
	for _, o := range m.Other {
		fn(SelectOther(o.Name), &o.Document)
	}
}

// SetLock transitions the month node itself (no cascade). Same semantics as
// Category.SetLock.
func (m *MonthRecord) SetLock(locked bool, actor Actor, at time.Time) bool {
	if m.Locked == locked {
		return false
	}
	m.Locked = locked
	if locked {
		m.WasLockedOnce = true
	}
	m.LockedBy = &actor
	m.LockChangedAt = &at
	return true
}

// CascadeResult reports which nodes a month-level cascade actually transitioned.
type CascadeResult struct {
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	Locked       bool               `json:"locked"`
	MonthChanged bool               `json:"monthChanged"`
	Categories   []CategorySelector `json:"categories,omitempty"`
}

// CascadeLock transitions the month node and forces every category beneath it
// to the same lock state. Categories already in the target state keep their
// metadata untouched; independently set overrides are overwritten. Each node
// keeps its own WasLockedOnce history.
func (m *MonthRecord) CascadeLock(year, month int, locked bool, actor Actor, at time.Time) CascadeResult {
	res := CascadeResult{Year: year, Month: month, Locked: locked}
	res.MonthChanged = m.SetLock(locked, actor, at)
	m.EachCategory(func(sel CategorySelector, c *Category) {
		if c.SetLock(locked, actor, at) {
			res.Categories = append(res.Categories, sel)
		}
	})
	return res
}

// HasFiles reports whether any category under the month holds at least one file.
func (m *MonthRecord) HasFiles() bool {
	found := false
	m.EachCategory(func(_ CategorySelector, c *Category) {
		if len(c.Files) > 0 {
			found = true
		}
	})
	return found
}

// CanMutate reports whether file mutations are allowed on the selected
// category. The category's own flag wins: a category independently unlocked
// after a month-level cascade accepts mutations even while the month stays
// locked. A category that does not exist yet follows the month flag.
func (m *MonthRecord) CanMutate(sel CategorySelector) bool {
	if c := m.Category(sel); c != nil {
		return !c.Locked
	}
	return !m.Locked
}
