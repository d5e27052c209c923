package rest

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_panel/internal/apiclient"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
)

// collectionRepository serves any backend resource shaped as
// GET/POST <path> and PUT/DELETE <item path>.
type collectionRepository[T portsrepo.Entity, R any, Q any] struct {
	BaseRepository
	name      string
	path      string
	toDomain  func(R) T
	toRequest func(T) Q
	pathOf    func(T) string
}

func newCollectionRepository[T portsrepo.Entity, R any, Q any](
	client *apiclient.Client,
	name, path string,
	toDomain func(R) T,
	toRequest func(T) Q,
) *collectionRepository[T, R, Q] {
	r := &collectionRepository[T, R, Q]{
		BaseRepository: BaseRepository{Client: client},
		name:           name,
		path:           path,
		toDomain:       toDomain,
		toRequest:      toRequest,
	}
	r.pathOf = func(item T) string { return itemPath(path, item.GetID()) }
	return r
}

func (r *collectionRepository[T, R, Q]) List(ctx context.Context) ([]T, error) {
	var rs []R
	if err := r.Client.Get(ctx, r.path, nil, &rs); err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.name, err)
	}
	items := make([]T, len(rs))
	for i, res := range rs {
		items[i] = r.toDomain(res)
	}
	return items, nil
}

func (r *collectionRepository[T, R, Q]) Create(ctx context.Context, item T) (*T, error) {
	var res R
	if err := r.Client.Post(ctx, r.path, r.toRequest(item), &res); err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.name, err)
	}
	return r.stored(res), nil
}

func (r *collectionRepository[T, R, Q]) Update(ctx context.Context, item T) (*T, error) {
	if item.GetID().IsZero() {
		return nil, fmt.Errorf("updating %s: id cannot be empty", r.name)
	}
	var res R
	if err := r.Client.Put(ctx, r.pathOf(item), r.toRequest(item), &res); err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", r.name, item.GetID(), err)
	}
	return r.stored(res), nil
}

func (r *collectionRepository[T, R, Q]) Delete(ctx context.Context, item T) error {
	if item.GetID().IsZero() {
		return fmt.Errorf("deleting %s: id cannot be empty", r.name)
	}
	if err := r.Client.Delete(ctx, r.pathOf(item)); err != nil {
		return fmt.Errorf("deleting %s %s: %w", r.name, item.GetID(), err)
	}
	return nil
}

// stored returns nil when the backend answered without an entity, so the
// caller falls back to what it sent.
func (r *collectionRepository[T, R, Q]) stored(res R) *T {
	item := r.toDomain(res)
	if item.GetID().IsZero() {
		return nil
	}
	return &item
}
