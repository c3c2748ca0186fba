// Package owners maps people to the ticket numbers they hold.
package owners

import (
	"github.com/google/uuid"

	"github.com/okian/tombola/internal/domain/model"
)

// Directory is a lookup aid only; it is never consulted by the draw itself
// and does not enforce ticket exclusivity across owners. First-match
// lookups follow insertion order.
type Directory struct {
	owners []*model.Owner
	byID   map[string]*model.Owner
}

// NewDirectory creates an empty owner directory.
func NewDirectory() *Directory {
	return &Directory{
		byID: make(map[string]*model.Owner),
	}
}

// Add creates an owner with a fresh id and returns a copy of it.
func (d *Directory) Add(name string, ticketNumbers []string) model.Owner {
	o := &model.Owner{
		ID:            uuid.NewString(),
		Name:          name,
		TicketNumbers: append([]string(nil), ticketNumbers...),
	}
	d.owners = append(d.owners, o)
	d.byID[o.ID] = o
	return o.Clone()
}

// AddBulk creates one owner per seed and returns the count created.
func (d *Directory) AddBulk(seeds []model.OwnerSeed) int {
	for _, s := range seeds {
		d.Add(s.Name, s.TicketNumbers)
	}
	return len(seeds)
}

// Update fully replaces name and ticket list on the matching owner. Silent
// no-op when the id is unknown.
func (d *Directory) Update(id, name string, ticketNumbers []string) {
	o, ok := d.byID[id]
	if !ok {
		return
	}
	o.Name = name
	o.TicketNumbers = append([]string(nil), ticketNumbers...)
}

// Delete removes the owner by id if present.
func (d *Directory) Delete(id string) {
	if _, ok := d.byID[id]; !ok {
		return
	}
	delete(d.byID, id)
	for i, o := range d.owners {
		if o.ID == id {
			d.owners = append(d.owners[:i], d.owners[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the owner by id.
func (d *Directory) Get(id string) (model.Owner, bool) {
	o, ok := d.byID[id]
	if !ok {
		return model.Owner{}, false
	}
	return o.Clone(), true
}

// FindByTicket returns the first owner, in directory order, whose ticket
// list contains the given ticket. Multiple owners may claim the same
// ticket; first match wins.
func (d *Directory) FindByTicket(ticket string) (model.Owner, bool) {
	for _, o := range d.owners {
		for _, t := range o.TicketNumbers {
			if t == ticket {
				return o.Clone(), true
			}
		}
	}
	return model.Owner{}, false
}

// AllTickets returns the deduplicated union of every owner's ticket
// numbers, in first-appearance order. Used to seed the ticket registry
// from the directory.
func (d *Directory) AllTickets() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range d.owners {
		for _, t := range o.TicketNumbers {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// All returns copies of every owner in insertion order.
func (d *Directory) All() []model.Owner {
	out := make([]model.Owner, len(d.owners))
	for i, o := range d.owners {
		out[i] = o.Clone()
	}
	return out
}

// Len returns the number of owners.
func (d *Directory) Len() int {
	return len(d.owners)
}

// Clear empties the directory.
func (d *Directory) Clear() {
	d.owners = nil
	d.byID = make(map[string]*model.Owner)
}
