package rest

import (
	"github.com/SscSPs/business_panel/internal/apiclient"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
)

type providerFactory struct {
	client *apiclient.Client
}

// NewProviderFactory returns a factory building backend repositories that
// authenticate with a session's token.
func NewProviderFactory(client *apiclient.Client) portsrepo.ProviderFactory {
	return &providerFactory{client: client}
}

func (f *providerFactory) ForToken(token string) *portsrepo.RepositoryProvider {
	client := f.client.ForToken(token)
	return &portsrepo.RepositoryProvider{
		Employees:  newEmployeeRepository(client),
		Workplaces: newWorkplaceRepository(client),
		Costs:      newFinanceRepository(client, KindCosts),
		Revenues:   newFinanceRepository(client, KindRevenues),
		Schedules:  newScheduleRepository(client),
		Profile:    newProfileRepository(client),
		Reports:    newReportRepository(client),
	}
}
