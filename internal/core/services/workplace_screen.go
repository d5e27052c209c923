package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	EntriesCosts    = "costs"
	EntriesRevenues = "revenues"
)

var workplaceMessages = ScreenMessages{
	LoadFailed:    "Nie udało się pobrać listy miejsc pracy",
	SaveFailed:    "Nie udało się zapisać miejsca pracy",
	DeleteFailed:  "Nie udało się usunąć miejsca pracy",
	ConfirmDelete: "Czy na pewno chcesz usunąć to miejsce pracy?",
	Empty:         "Brak miejsc pracy",
}

type workplaceScreen struct {
	portssvc.ListScreen[domain.Workplace, dto.WorkplaceForm]
	BaseService
	repo portsrepo.WorkplaceRepository
}

// NewWorkplaceScreen creates the workplaces screen with its cost and revenue dialogs.
func NewWorkplaceScreen(repo portsrepo.WorkplaceRepository) portssvc.WorkplaceScreen {
	list := NewListScreen(ScreenConfig[domain.Workplace, dto.WorkplaceForm]{
		Name:     "workplaces",
		Repo:     repo,
		Messages: workplaceMessages,
		NewForm:  func() dto.WorkplaceForm { return dto.WorkplaceForm{} },
		FormFrom: mapping.ToWorkplaceForm,
		Validate: validation.Struct[dto.WorkplaceForm],
		Build: func(form dto.WorkplaceForm, current *domain.Workplace) (domain.Workplace, error) {
			return mapping.WorkplaceFromForm(form, current), nil
		},
		AfterSave:   Patch,
		AfterDelete: Patch,
		Merge:       mergeWorkplace,
	})
	return &workplaceScreen{ListScreen: list, repo: repo}
}

var _ portssvc.WorkplaceScreen = (*workplaceScreen)(nil)

func mergeWorkplace(stored domain.Workplace, previous *domain.Workplace) domain.Workplace {
	if previous == nil {
		stored.MonthlyCosts = decimal.Zero
		stored.MonthlyRevenues = decimal.Zero
		return stored
	}
	stored.MonthlyCosts = previous.MonthlyCosts
	stored.MonthlyRevenues = previous.MonthlyRevenues
	return stored
}

func (s *workplaceScreen) OpenEntries(ctx context.Context, id domain.ID, kind string) (*portssvc.EntryDialog, error) {
	var workplace *domain.Workplace
	for _, w := range s.State().Items {
		if w.ID == id {
			workplace = &w
			break
		}
	}
	if workplace == nil {
		return nil, fmt.Errorf("workplace %s: %w", id, apperrors.ErrNotFound)
	}

	dialog := &portssvc.EntryDialog{Workplace: *workplace}
	var (
		entries []domain.WorkplaceEntry
		err     error
	)
	switch kind {
	case EntriesCosts:
		dialog.Title = "Koszty - " + workplace.Name
		entries, err = s.repo.ListWorkplaceCosts(ctx, id)
	case EntriesRevenues:
		dialog.Title = "Przychody - " + workplace.Name
		entries, err = s.repo.ListWorkplaceRevenues(ctx, id)
	default:
		return nil, fmt.Errorf("unknown entry kind %q: %w", kind, apperrors.ErrValidation)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace entries",
			slog.String("workplace_id", id.String()),
			slog.String("kind", kind))
		dialog.Entries = []domain.WorkplaceEntry{}
		return dialog, err
	}
	dialog.Entries = entries
	return dialog, nil
}
