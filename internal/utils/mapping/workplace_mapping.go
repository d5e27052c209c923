package mapping

import (
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
)

// ToDomainWorkplace converts the backend representation to a domain Workplace.
func ToDomainWorkplace(r dto.WorkplaceResponse) domain.Workplace {
	return domain.Workplace{
		ID:              r.ID,
		Name:            r.Name,
		Location:        r.Location,
		Description:     r.Description,
		MonthlyCosts:    r.MonthlyCosts,
		MonthlyRevenues: r.MonthlyRevenues,
	}
}

func ToDomainWorkplaces(rs []dto.WorkplaceResponse) []domain.Workplace {
	out := make([]domain.Workplace, len(rs))
	for i, r := range rs {
		out[i] = ToDomainWorkplace(r)
	}
	return out
}

func ToWorkplaceRequest(w domain.Workplace) dto.WorkplaceRequest {
	return dto.WorkplaceRequest{
		Name:        w.Name,
		Location:    w.Location,
		Description: w.Description,
	}
}

func ToWorkplaceForm(w domain.Workplace) dto.WorkplaceForm {
	return dto.WorkplaceForm{
		Name:        w.Name,
		Location:    w.Location,
		Description: w.Description,
	}
}

// WorkplaceFromForm applies a validated form on top of current (nil when creating).
func WorkplaceFromForm(f dto.WorkplaceForm, current *domain.Workplace) domain.Workplace {
	var w domain.Workplace
	if current != nil {
		w = *current
	}
	w.Name = strings.TrimSpace(f.Name)
	w.Location = strings.TrimSpace(f.Location)
	w.Description = strings.TrimSpace(f.Description)
	return w
}

// ToDomainWorkplaceEntries converts the rows of a workplace cost or revenue dialog.
func ToDomainWorkplaceEntries(rs []dto.WorkplaceEntryResponse) []domain.WorkplaceEntry {
	out := make([]domain.WorkplaceEntry, len(rs))
	for i, r := range rs {
		out[i] = domain.WorkplaceEntry{
			ID:          r.ID,
			EmployeeID:  r.EmployeeID,
			Description: r.Description,
			Amount:      r.Amount,
			Date:        r.Date,
		}
	}
	return out
}
