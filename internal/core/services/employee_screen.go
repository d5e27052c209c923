package services

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
	"github.com/shopspring/decimal"
)

var employeeMessages = ScreenMessages{
	LoadFailed:    "Nie udało się pobrać listy pracowników",
	SaveFailed:    "Nie udało się zapisać pracownika",
	DeleteFailed:  "Nie udało się usunąć pracownika",
	ConfirmDelete: "Czy na pewno chcesz usunąć tego pracownika?",
	Empty:         "Brak pracowników",
}

// NewEmployeeScreen creates the employees screen. Writes are patched into the
// local list; monthly totals start at zero and survive edits.
func NewEmployeeScreen(repo portsrepo.EmployeeRepository) portssvc.EmployeeScreen {
	return NewListScreen(ScreenConfig[domain.Employee, dto.EmployeeForm]{
		Name:     "employees",
		Repo:     repo,
		Messages: employeeMessages,
		NewForm:  func() dto.EmployeeForm { return dto.EmployeeForm{} },
		FormFrom: mapping.ToEmployeeForm,
		Validate: validation.Struct[dto.EmployeeForm],
		Build: func(form dto.EmployeeForm, current *domain.Employee) (domain.Employee, error) {
			return mapping.EmployeeFromForm(form, current), nil
		},
		AfterSave:   Patch,
		AfterDelete: Patch,
		Merge:       mergeEmployee,
	})
}

func mergeEmployee(stored domain.Employee, previous *domain.Employee) domain.Employee {
	if previous == nil {
		stored.MonthlyCosts = decimal.Zero
		stored.MonthlyRevenues = decimal.Zero
		return stored
	}
	stored.MonthlyCosts = previous.MonthlyCosts
	stored.MonthlyRevenues = previous.MonthlyRevenues
	return stored
}
