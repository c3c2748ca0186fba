// Package prizes holds the prize catalog and assignment state.
package prizes

import (
	"github.com/google/uuid"

	"github.com/okian/tombola/internal/domain/model"
)

// Catalog is an insertion-ordered prize list keyed by id. Category
// existence is the caller's responsibility; the catalog stores whatever
// label it is handed.
//
// Like the other raffle collections it is not internally synchronized; the
// owning service serializes access.
type Catalog struct {
	prizes []*model.Prize
	byID   map[string]*model.Prize
}

// NewCatalog creates an empty prize catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*model.Prize),
	}
}

// Add creates an unassigned prize and returns a copy of it.
func (c *Catalog) Add(name, category string) model.Prize {
	p := &model.Prize{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
	}
	c.prizes = append(c.prizes, p)
	c.byID[p.ID] = p
	return *p
}

// AddBulk creates one prize per seed and returns the count created.
// Malformed rows are filtered before reaching the catalog, so the count is
// always len(seeds).
func (c *Catalog) AddBulk(seeds []model.PrizeSeed) int {
	for _, s := range seeds {
		c.Add(s.Name, s.Category)
	}
	return len(seeds)
}

// Update replaces name and category on the matching prize. Silent no-op
// when the id is unknown. Assigned prizes are not exempt; history entries
// hold frozen snapshots and stay unchanged.
func (c *Catalog) Update(id, name, category string) {
	p, ok := c.byID[id]
	if !ok {
		return
	}
	p.Name = name
	p.Category = category
}

// Delete removes the prize by id if present.
func (c *Catalog) Delete(id string) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	for i, p := range c.prizes {
		if p.ID == id {
			c.prizes = append(c.prizes[:i], c.prizes[i+1:]...)
			break
		}
	}
}

// Assign marks the prize assigned to the given ticket. Returns false when
// the id is unknown or the prize is already assigned.
func (c *Catalog) Assign(id, ticket string) bool {
	p, ok := c.byID[id]
	if !ok || p.Assigned {
		return false
	}
	p.Assigned = true
	p.AssignedTo = ticket
	return true
}

// Get returns a copy of the prize by id.
func (c *Catalog) Get(id string) (model.Prize, bool) {
	p, ok := c.byID[id]
	if !ok {
		return model.Prize{}, false
	}
	return *p, true
}

// AvailableInCategory returns copies of the unassigned prizes with the
// given category, in insertion order.
func (c *Catalog) AvailableInCategory(category string) []model.Prize {
	var out []model.Prize
	for _, p := range c.prizes {
		if p.Category == category && !p.Assigned {
			out = append(out, *p)
		}
	}
	return out
}

// AllInCategory returns copies of every prize with the given category,
// assigned or not.
func (c *Catalog) AllInCategory(category string) []model.Prize {
	var out []model.Prize
	for _, p := range c.prizes {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out
}

// AnyInCategory reports whether any prize references the category. Used to
// guard category deletion.
func (c *Catalog) AnyInCategory(category string) bool {
	for _, p := range c.prizes {
		if p.Category == category {
			return true
		}
	}
	return false
}

// All returns copies of every prize in insertion order.
func (c *Catalog) All() []model.Prize {
	out := make([]model.Prize, len(c.prizes))
	for i, p := range c.prizes {
		out[i] = *p
	}
	return out
}

// AvailableCount returns the number of unassigned prizes.
func (c *Catalog) AvailableCount() int {
	n := 0
	for _, p := range c.prizes {
		if !p.Assigned {
			n++
		}
	}
	return n
}

// Len returns the number of prizes in the catalog.
func (c *Catalog) Len() int {
	return len(c.prizes)
}

// Clear empties the catalog.
func (c *Catalog) Clear() {
	c.prizes = nil
	c.byID = make(map[string]*model.Prize)
}
