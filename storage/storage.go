package storage

import (
	"context"
	"fmt"

	"items-api/models"
)

// Store is the capability set shared by both storage backends. Legitimate
// absence is reported through sentinel values (nil item, false), never
// through errors; errors mean the backend itself failed.
type Store interface {
	// Create persists a new item and returns it fully populated with the
	// backend-assigned id and timestamps.
	Create(ctx context.Context, patch models.ItemPatch) (*models.Item, error)

	// GetAll returns every item, newest first. An empty slice is a valid
	// result, not an error.
	GetAll(ctx context.Context) ([]models.Item, error)

	// GetByID returns the matching item, or (nil, nil) when no item has
	// that id.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Update applies the supplied fields to the stored item, refreshes
	// updated_at and returns the result, or (nil, nil) when absent.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error)

	// Delete removes the item permanently. It returns false when no item
	// has that id.
	Delete(ctx context.Context, id int64) (bool, error)

	// Search returns items whose name or description contains term as a
	// case-insensitive substring, ordered like GetAll.
	Search(ctx context.Context, term string) ([]models.Item, error)
}

// StorageError wraps a backend failure with the operation that hit it.
// There is no finer-grained taxonomy at this layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Error %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
