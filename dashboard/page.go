// Package dashboard holds the page logic behind the laundry management
// screens: list state, form defaults, notifications and delete confirmation.
// It talks to the API only through the client package.
package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/kendall-kelly/laundry-api/client"
)

// Notifier shows the outcome of a user action
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// Confirmer asks the user to approve a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// resource is the part of client.Resource a page drives
type resource[T any, I any] interface {
	List(ctx context.Context) client.Result[[]T]
	Create(ctx context.Context, input I) client.Result[T]
	Update(ctx context.Context, id uint, input I) client.Result[T]
	Delete(ctx context.Context, id uint) client.Result[client.Empty]
}

// Page keeps the rows of one entity in sync with the server. Local state only
// changes after the server has confirmed a write.
type Page[T any, I any] struct {
	mu        sync.Mutex
	items     []T
	loading   bool
	resource  resource[T, I]
	notifier  Notifier
	confirmer Confirmer
	idOf      func(T) uint
	entity    string // "Customer"
	plural    string // "customers"
}

func newPage[T any, I any](r resource[T, I], n Notifier, c Confirmer, idOf func(T) uint, entity, plural string) *Page[T, I] {
	return &Page[T, I]{resource: r, notifier: n, confirmer: c, idOf: idOf, entity: entity, plural: plural}
}

// Items returns a copy of the current rows
func (p *Page[T, I]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Loading reports whether a list request is in flight
func (p *Page[T, I]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Find returns the row with id
func (p *Page[T, I]) Find(id uint) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range p.items {
		if p.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Load replaces the rows with the server's list
func (p *Page[T, I]) Load(ctx context.Context) bool {
	p.setLoading(true)
	defer p.setLoading(false)

	res := p.resource.List(ctx)
	if !res.Success {
		p.notifier.Error("Error", "Failed to load "+p.plural+". Please try again.")
		return false
	}

	p.mu.Lock()
	p.items = res.Data
	p.mu.Unlock()
	return true
}

// Submit creates a row when id is 0 and updates row id otherwise
func (p *Page[T, I]) Submit(ctx context.Context, id uint, input I) (T, bool) {
	var res client.Result[T]
	verb := "created"
	if id == 0 {
		res = p.resource.Create(ctx, input)
	} else {
		res = p.resource.Update(ctx, id, input)
		verb = "updated"
	}

	if !res.Success {
		p.notifier.Error("Error", failureMessage(res.Error, res.Details))
		var zero T
		return zero, false
	}

	p.merge(res.Data)
	p.notifier.Success("Success", successMessage(res.Message, p.entity+" "+verb+" successfully!"))
	return res.Data, true
}

// Delete removes row id after the user confirms
func (p *Page[T, I]) Delete(ctx context.Context, id uint) bool {
	if !p.confirmer.Confirm("Are you sure you want to delete this " + strings.ToLower(p.entity) + "?") {
		return false
	}

	res := p.resource.Delete(ctx, id)
	if !res.Success {
		p.notifier.Error("Error", res.Error)
		return false
	}

	p.mu.Lock()
	kept := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if p.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	p.items = kept
	p.mu.Unlock()

	p.notifier.Success("Success", successMessage(res.Message, p.entity+" deleted successfully!"))
	return true
}

// merge replaces the row with the same id or prepends a new one
func (p *Page[T, I]) merge(item T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.idOf(item)
	for i := range p.items {
		if p.idOf(p.items[i]) == id {
			p.items[i] = item
			return
		}
	}
	p.items = append([]T{item}, p.items...)
}

func (p *Page[T, I]) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}
