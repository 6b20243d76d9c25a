package mystore

import (
	"context"
)

// Store keeps values of a single kind addressed by uid. Put overwrites, so
// writing the same record twice is harmless.
type Store[T any] interface {
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
}

// New returns a datastore backed store when a gcloud project is configured and
// an in-memory one otherwise.
func New[T any](c context.Context, projectID string) (Store[T], func(), error) {
	if projectID != "" {
		return newGcloudStore[T](c, projectID)
	}

	return NewInMemoryStore[T](c)
}
