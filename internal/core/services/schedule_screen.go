package services

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
)

var scheduleMessages = ScreenMessages{
	LoadFailed:    "Nie udało się pobrać grafików",
	SaveFailed:    "Wystąpił błąd podczas zapisywania grafiku",
	DeleteFailed:  "Nie udało się usunąć grafiku",
	ConfirmDelete: "Czy na pewno chcesz usunąć ten grafik?",
	Empty:         "Brak zaplanowanych grafików",
}

// NewScheduleScreen creates the schedules screen. Every write reloads the list.
func NewScheduleScreen(repo portsrepo.ScheduleRepository, workplaces portsrepo.CollectionReader[domain.Workplace], employees portsrepo.CollectionReader[domain.Employee]) portssvc.ScheduleScreen {
	return NewListScreen(ScreenConfig[domain.Schedule, dto.ScheduleForm]{
		Name:     "schedules",
		Repo:     repo,
		Messages: scheduleMessages,
		Lookups:  []Lookup{WorkplaceLookup(workplaces), EmployeeLookup(employees)},
		NewForm: func() dto.ScheduleForm {
			return dto.ScheduleForm{Date: domain.Today().String(), Hours: "8"}
		},
		FormFrom:    mapping.ToScheduleForm,
		Validate:    validation.Struct[dto.ScheduleForm],
		Build:       mapping.ScheduleFromForm,
		AfterSave:   Refetch,
		AfterDelete: Refetch,
	})
}
