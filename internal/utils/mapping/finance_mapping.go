package mapping

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils"
)

// ToDomainFinanceEntry converts a backend cost or revenue.
func ToDomainFinanceEntry(r dto.FinanceEntryResponse) domain.FinanceEntry {
	e := domain.FinanceEntry{
		ID:            r.ID,
		Type:          domain.EntryTarget(r.Type),
		WorkplaceID:   r.WorkplaceID,
		WorkplaceName: r.WorkplaceName,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		CreatedAt:     r.CreatedAt.Time,
		StoredType:    domain.EntryTarget(r.Type),
	}
	return e
}

func ToDomainFinanceEntries(rs []dto.FinanceEntryResponse) []domain.FinanceEntry {
	out := make([]domain.FinanceEntry, len(rs))
	for i, r := range rs {
		out[i] = ToDomainFinanceEntry(r)
	}
	return out
}

// ToFinanceEntryRequest sends only the target id matching the entry type.
func ToFinanceEntryRequest(e domain.FinanceEntry) dto.FinanceEntryRequest {
	req := dto.FinanceEntryRequest{
		Type:        string(e.Type),
		Description: e.Description,
		Amount:      json.Number(e.Amount.String()),
		Date:        e.Date.String(),
	}
	switch e.Type {
	case domain.TargetWorkplace:
		id := e.WorkplaceID
		req.WorkplaceID = &id
	case domain.TargetEmployee:
		id := e.EmployeeID
		req.EmployeeID = &id
	}
	return req
}

// ToFinanceForm fills the modal from an existing cost or revenue.
func ToFinanceForm(e domain.FinanceEntry) dto.FinanceForm {
	return dto.FinanceForm{
		Type:        string(e.Type),
		WorkplaceID: e.WorkplaceID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Date:        e.Date.String(),
	}
}

// FinanceEntryFromForm applies a validated form on top of current (nil when creating).
func FinanceEntryFromForm(f dto.FinanceForm, current *domain.FinanceEntry) (domain.FinanceEntry, error) {
	var e domain.FinanceEntry
	if current != nil {
		e = *current
	}

	amount, err := utils.ParseAmount(f.Amount)
	if err != nil {
		return e, fmt.Errorf("%w: amount %q: %v", apperrors.ErrValidation, f.Amount, err)
	}
	date, err := domain.ParseDay(f.Date)
	if err != nil {
		return e, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	e.Type = domain.EntryTarget(f.Type)
	e.Description = strings.TrimSpace(f.Description)
	e.Amount = amount
	e.Date = date
	e.WorkplaceID, e.EmployeeID = "", ""
	switch e.Type {
	case domain.TargetWorkplace:
		e.WorkplaceID = domain.ID(f.WorkplaceID)
	case domain.TargetEmployee:
		e.EmployeeID = domain.ID(f.EmployeeID)
	}
	return e, nil
}
