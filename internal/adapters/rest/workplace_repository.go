package rest

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const workplacesPath = "/api/workplaces"

type WorkplaceRepository struct {
	*collectionRepository[domain.Workplace, dto.WorkplaceResponse, dto.WorkplaceRequest]
}

// Ensure WorkplaceRepository implements portsrepo.WorkplaceRepository
var _ portsrepo.WorkplaceRepository = (*WorkplaceRepository)(nil)

func newWorkplaceRepository(client *apiclient.Client) *WorkplaceRepository {
	return &WorkplaceRepository{
		collectionRepository: newCollectionRepository(client, "workplace", workplacesPath,
			mapping.ToDomainWorkplace, mapping.ToWorkplaceRequest),
	}
}

func (r *WorkplaceRepository) ListWorkplaceCosts(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error) {
	return r.listEntries(ctx, workplaceID, "costs")
}

func (r *WorkplaceRepository) ListWorkplaceRevenues(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error) {
	return r.listEntries(ctx, workplaceID, "revenues")
}

func (r *WorkplaceRepository) listEntries(ctx context.Context, workplaceID domain.ID, kind string) ([]domain.WorkplaceEntry, error) {
	if workplaceID.IsZero() {
		return nil, fmt.Errorf("listing workplace %s: id cannot be empty", kind)
	}
	var rs []dto.WorkplaceEntryResponse
	if err := r.Client.Get(ctx, itemPath(workplacesPath, workplaceID)+"/"+kind, nil, &rs); err != nil {
		return nil, fmt.Errorf("listing %s of workplace %s: %w", kind, workplaceID, err)
	}
	return mapping.ToDomainWorkplaceEntries(rs), nil
}
