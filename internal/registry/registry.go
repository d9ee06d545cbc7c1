// Package registry holds the fixed set of content panels known at startup.
package registry

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
)

// ErrNotFound is returned by Get for an unknown panel id.
var ErrNotFound = errors.New("panel not found")

// Panel is a content section presented in an overlay.
// Whether it is visible is decided by the modal controller, not stored here.
type Panel struct {
	ID    string
	Title string
}

// Registry is an immutable, ordered set of panels.
type Registry struct {
	order  []string
	panels map[string]Panel
}

// New builds a registry. Later duplicates of an id are ignored.
func New(panels ...Panel) *Registry {
	r := &Registry{panels: make(map[string]Panel, len(panels))}
	for _, p := range panels {
		if p.ID == "" {
			continue
		}
		if _, dup := r.panels[p.ID]; dup {
			continue
		}
		r.panels[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Lookup returns the panel with the given id.
func (r *Registry) Lookup(id string) (Panel, bool) {
	if r == nil {
		return Panel{}, false
	}
	p, ok := r.panels[id]
	return p, ok
}

// Get is Lookup with an error for callers that report to a user.
func (r *Registry) Get(id string) (Panel, error) {
	p, ok := r.Lookup(id)
	if !ok {
		return Panel{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// IDs returns panel ids in declaration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Find resolves a loose query to a panel. An exact id wins; otherwise the
// best fuzzy match over ids and titles is returned.
func (r *Registry) Find(query string) (Panel, bool) {
	if p, ok := r.Lookup(query); ok {
		return p, true
	}
	if query == "" || len(r.order) == 0 {
		return Panel{}, false
	}

	// Search ids first, then titles, each indexed back to r.order
	candidates := make([]string, 0, len(r.order)*2)
	candidates = append(candidates, r.order...)
	for _, id := range r.order {
		candidates = append(candidates, r.panels[id].Title)
	}

	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return Panel{}, false
	}
	id := r.order[matches[0].Index%len(r.order)]
	return r.panels[id], true
}
