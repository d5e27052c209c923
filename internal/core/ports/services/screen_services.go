package services

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/validation"
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer func(prompt string) bool

// LookupOption is an entry of a select box fed by another collection.
type LookupOption struct {
	ID    domain.ID
	Label string
}

// ScreenState is a snapshot of a list screen.
type ScreenState[T any, F any] struct {
	Items         []T
	Loading       bool
	Error         string // page-level banner
	Empty         string // shown when Items is empty
	ModalOpen     bool
	Editing       *T // nil while creating
	Form          F
	FieldErrors   validation.FieldErrors
	FormError     string // banner inside the modal
	ConfirmPrompt string // pending delete confirmation
	ConfirmID     domain.ID
	Lookups       map[string][]LookupOption
}

// IsEditing reports whether the modal edits an existing item.
func (s ScreenState[T, F]) IsEditing() bool { return s.Editing != nil }

// ListScreen is the list, modal form and delete flow of one entity kind.
type ListScreen[T any, F any] interface {
	// Load fetches the collection and its lookups together.
	Load(ctx context.Context) error
	OpenCreate()
	OpenEdit(id domain.ID) error
	CloseModal()
	Submit(ctx context.Context, form F) error
	Delete(ctx context.Context, id domain.ID, confirm Confirmer) error
	State() ScreenState[T, F]
}

type EmployeeScreen = ListScreen[domain.Employee, dto.EmployeeForm]

type FinanceScreen = ListScreen[domain.FinanceEntry, dto.FinanceForm]

type ScheduleScreen = ListScreen[domain.Schedule, dto.ScheduleForm]

// EntryDialog is the read-only list of one workplace's costs or revenues.
type EntryDialog struct {
	Workplace domain.Workplace
	Title     string
	Entries   []domain.WorkplaceEntry
}

// WorkplaceScreen adds the per-workplace cost and revenue dialogs.
type WorkplaceScreen interface {
	ListScreen[domain.Workplace, dto.WorkplaceForm]
	// OpenEntries loads the dialog for kind "costs" or "revenues". Failures
	// leave the dialog empty instead of failing the screen.
	OpenEntries(ctx context.Context, id domain.ID, kind string) (*EntryDialog, error)
}
