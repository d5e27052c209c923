package services

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
)

var costMessages = ScreenMessages{
	LoadFailed:    "Nie udało się pobrać listy kosztów",
	SaveFailed:    "Nie udało się zapisać kosztu",
	DeleteFailed:  "Nie udało się usunąć kosztu",
	ConfirmDelete: "Czy na pewno chcesz usunąć ten koszt?",
	Empty:         "Brak kosztów",
}

var revenueMessages = ScreenMessages{
	LoadFailed:    "Nie udało się pobrać listy przychodów",
	SaveFailed:    "Nie udało się zapisać przychodu",
	DeleteFailed:  "Nie udało się usunąć przychodu",
	ConfirmDelete: "Czy na pewno chcesz usunąć ten przychód?",
	Empty:         "Brak przychodów",
}

// NewCostScreen creates the costs screen. Saves reload the list so joined
// workplace and employee names come from the backend; deletes are patched.
func NewCostScreen(repo portsrepo.FinanceRepository, workplaces portsrepo.CollectionReader[domain.Workplace], employees portsrepo.CollectionReader[domain.Employee]) portssvc.FinanceScreen {
	return NewListScreen(financeConfig("costs", repo, costMessages, validation.Struct[dto.FinanceForm], workplaces, employees))
}

// NewRevenueScreen creates the revenues screen. Revenues also need a description.
func NewRevenueScreen(repo portsrepo.FinanceRepository, workplaces portsrepo.CollectionReader[domain.Workplace], employees portsrepo.CollectionReader[domain.Employee]) portssvc.FinanceScreen {
	return NewListScreen(financeConfig("revenues", repo, revenueMessages, validateRevenue, workplaces, employees))
}

func validateRevenue(form *dto.FinanceForm) validation.FieldErrors {
	errs := validation.Struct(form)
	if form.Description == "" {
		if errs == nil {
			errs = validation.FieldErrors{}
		}
		errs.Add("description", form.ValidationMessages()["description.required"])
	}
	return errs
}

func financeConfig(
	name string,
	repo portsrepo.FinanceRepository,
	messages ScreenMessages,
	validate func(*dto.FinanceForm) validation.FieldErrors,
	workplaces portsrepo.CollectionReader[domain.Workplace],
	employees portsrepo.CollectionReader[domain.Employee],
) ScreenConfig[domain.FinanceEntry, dto.FinanceForm] {
	return ScreenConfig[domain.FinanceEntry, dto.FinanceForm]{
		Name:     name,
		Repo:     repo,
		Messages: messages,
		Lookups:  []Lookup{WorkplaceLookup(workplaces), EmployeeLookup(employees)},
		NewForm: func() dto.FinanceForm {
			return dto.FinanceForm{Type: string(domain.TargetWorkplace), Date: domain.Today().String()}
		},
		FormFrom:    mapping.ToFinanceForm,
		Validate:    validate,
		Build:       mapping.FinanceEntryFromForm,
		AfterSave:   Refetch,
		AfterDelete: Patch,
	}
}
