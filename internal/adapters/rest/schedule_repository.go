package rest

import (
	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const schedulesPath = "/api/schedules"

type ScheduleRepository struct {
	*collectionRepository[domain.Schedule, dto.ScheduleResponse, dto.ScheduleRequest]
}

var _ portsrepo.ScheduleRepository = (*ScheduleRepository)(nil)

func newScheduleRepository(client *apiclient.Client) *ScheduleRepository {
	return &ScheduleRepository{
		collectionRepository: newCollectionRepository(client, "schedule", schedulesPath,
			mapping.ToDomainSchedule, mapping.ToScheduleRequest),
	}
}
