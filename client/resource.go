package client

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the set of calls shared by every entity. T is the entity as the
// server returns it, I the input accepted on create and update.
type Resource[T any, I any] struct {
	client   *Client
	path     string
	singular string
	plural   string
}

func newResource[T any, I any](c *Client, path, singular, plural string) *Resource[T, I] {
	return &Resource[T, I]{client: c, path: path, singular: singular, plural: plural}
}

func (r *Resource[T, I]) item(id uint) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// List fetches every row
func (r *Resource[T, I]) List(ctx context.Context) Result[[]T] {
	return do[[]T](ctx, r.client, http.MethodGet, r.path, nil, "Failed to fetch "+r.plural)
}

// Get fetches one row with its related records
func (r *Resource[T, I]) Get(ctx context.Context, id uint) Result[T] {
	return do[T](ctx, r.client, http.MethodGet, r.item(id), nil, "Failed to fetch "+r.singular)
}

// Create normalizes and validates input locally and then creates the row
func (r *Resource[T, I]) Create(ctx context.Context, input I) Result[T] {
	if res, ok := validated[T](&input); !ok {
		return res
	}
	return do[T](ctx, r.client, http.MethodPost, r.path, input, "Failed to create "+r.singular)
}

// Update normalizes and validates input locally and then replaces the row
func (r *Resource[T, I]) Update(ctx context.Context, id uint, input I) Result[T] {
	if res, ok := validated[T](&input); !ok {
		return res
	}
	return do[T](ctx, r.client, http.MethodPut, r.item(id), input, "Failed to update "+r.singular)
}

// Delete removes the row
func (r *Resource[T, I]) Delete(ctx context.Context, id uint) Result[Empty] {
	return do[Empty](ctx, r.client, http.MethodDelete, r.item(id), nil, "Failed to delete "+r.singular)
}
