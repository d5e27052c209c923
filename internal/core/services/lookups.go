package services

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
)

const (
	LookupWorkplaces = "workplaces"
	LookupEmployees  = "employees"
)

// WorkplaceLookup offers workplaces by name.
func WorkplaceLookup(repo portsrepo.CollectionReader[domain.Workplace]) Lookup {
	return Lookup{
		Name: LookupWorkplaces,
		Fetch: func(ctx context.Context) ([]portssvc.LookupOption, error) {
			workplaces, err := repo.List(ctx)
			if err != nil {
				return nil, err
			}
			options := make([]portssvc.LookupOption, len(workplaces))
			for i, w := range workplaces {
				options[i] = portssvc.LookupOption{ID: w.ID, Label: w.Name}
			}
			return options, nil
		},
	}
}

// EmployeeLookup offers employees by full name.
func EmployeeLookup(repo portsrepo.CollectionReader[domain.Employee]) Lookup {
	return Lookup{
		Name: LookupEmployees,
		Fetch: func(ctx context.Context) ([]portssvc.LookupOption, error) {
			employees, err := repo.List(ctx)
			if err != nil {
				return nil, err
			}
			options := make([]portssvc.LookupOption, len(employees))
			for i, e := range employees {
				options[i] = portssvc.LookupOption{ID: e.ID, Label: e.FullName()}
			}
			return options, nil
		},
	}
}
