package rest

import (
	"fmt"
	"net/url"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

// FinanceKind selects the costs or the revenues resource.
type FinanceKind string

const (
	KindCosts    FinanceKind = "costs"
	KindRevenues FinanceKind = "revenues"
)

// FinanceRepository serves /api/costs and /api/revenues. Single entries are
// addressed by the stored target type and id: /api/costs/workplace/<id>.
type FinanceRepository struct {
	*collectionRepository[domain.FinanceEntry, dto.FinanceEntryResponse, dto.FinanceEntryRequest]
}

var _ portsrepo.FinanceRepository = (*FinanceRepository)(nil)

func newFinanceRepository(client *apiclient.Client, kind FinanceKind) *FinanceRepository {
	base := "/api/" + string(kind)
	repo := newCollectionRepository(client, string(kind), base,
		mapping.ToDomainFinanceEntry, mapping.ToFinanceEntryRequest)
	repo.pathOf = func(e domain.FinanceEntry) string {
		return fmt.Sprintf("%s/%s/%s", base, url.PathEscape(string(e.PathType())), url.PathEscape(e.ID.String()))
	}
	return &FinanceRepository{collectionRepository: repo}
}
