package repositories

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// Entity is anything a list screen can show and address by id.
type Entity interface {
	GetID() domain.ID
}

// CollectionReader loads a whole collection.
type CollectionReader[T Entity] interface {
	List(ctx context.Context) ([]T, error)
}

// CollectionWriter persists single items of a collection.
type CollectionWriter[T Entity] interface {
	// Create returns the item as stored by the backend.
	Create(ctx context.Context, item T) (*T, error)
	// Update returns the item as stored by the backend.
	Update(ctx context.Context, item T) (*T, error)
	Delete(ctx context.Context, item T) error
}

// CollectionRepository combines reads and writes of one entity kind.
type CollectionRepository[T Entity] interface {
	CollectionReader[T]
	CollectionWriter[T]
}
