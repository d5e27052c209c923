package rest

import (
	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const employeesPath = "/api/employees"

type EmployeeRepository struct {
	*collectionRepository[domain.Employee, dto.EmployeeResponse, dto.EmployeeRequest]
}

var _ portsrepo.EmployeeRepository = (*EmployeeRepository)(nil)

func newEmployeeRepository(client *apiclient.Client) *EmployeeRepository {
	return &EmployeeRepository{
		collectionRepository: newCollectionRepository(client, "employee", employeesPath,
			mapping.ToDomainEmployee, mapping.ToEmployeeRequest),
	}
}
