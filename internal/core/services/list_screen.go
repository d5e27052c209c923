package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/validation"
	"golang.org/x/sync/errgroup"
)

// Reconcile decides how the local collection follows a successful write.
type Reconcile int

const (
	// Patch updates the local collection without asking the backend.
	Patch Reconcile = iota
	// Refetch reloads the whole collection.
	Refetch
)

// ScreenMessages are the user-facing texts of a screen.
type ScreenMessages struct {
	LoadFailed    string
	SaveFailed    string
	DeleteFailed  string
	ConfirmDelete string
	Empty         string
}

// Lookup fills a select box of the screen from another collection.
type Lookup struct {
	Name  string
	Fetch func(ctx context.Context) ([]portssvc.LookupOption, error)
}

// ScreenConfig describes one entity screen.
type ScreenConfig[T portsrepo.Entity, F any] struct {
	Name     string
	Repo     portsrepo.CollectionRepository[T]
	Messages ScreenMessages
	Lookups  []Lookup

	NewForm  func() F
	FormFrom func(item T) F
	Validate func(form *F) validation.FieldErrors
	// Build applies a validated form to current, which is nil when creating.
	Build func(form F, current *T) (T, error)

	AfterSave   Reconcile
	AfterDelete Reconcile
	// Merge is used by Patch to combine the stored item with the previous
	// local one (nil when creating). Without it the stored item is taken as is.
	Merge func(stored T, previous *T) T
}

// listScreen implements portssvc.ListScreen for any entity kind.
type listScreen[T portsrepo.Entity, F any] struct {
	BaseService
	cfg ScreenConfig[T, F]

	mu         sync.Mutex
	generation uint64
	state      portssvc.ScreenState[T, F]
}

// NewListScreen creates a screen in its initial, empty state.
func NewListScreen[T portsrepo.Entity, F any](cfg ScreenConfig[T, F]) portssvc.ListScreen[T, F] {
	s := &listScreen[T, F]{cfg: cfg}
	s.state.Form = cfg.NewForm()
	s.state.Empty = cfg.Messages.Empty
	return s
}

func (s *listScreen[T, F]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Loading = true
	s.mu.Unlock()

	var (
		items   []T
		lookups = make([][]portssvc.LookupOption, len(s.cfg.Lookups))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.cfg.Repo.List(gctx)
		return err
	})
	for i, lookup := range s.cfg.Lookups {
		g.Go(func() error {
			options, err := lookup.Fetch(gctx)
			if err != nil {
				return fmt.Errorf("lookup %s: %w", lookup.Name, err)
			}
			lookups[i] = options
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.LogDebug(ctx, "Discarding superseded load", slog.String("screen", s.cfg.Name))
		return apperrors.ErrStaleResponse
	}
	s.state.Loading = false

	if err != nil {
		s.LogError(ctx, err, "Failed to load screen", slog.String("screen", s.cfg.Name))
		s.state.Error = s.cfg.Messages.LoadFailed
		return fmt.Errorf("loading %s: %w", s.cfg.Name, err)
	}

	if items == nil {
		items = []T{}
	}
	s.state.Items = items
	s.state.Error = ""
	if len(s.cfg.Lookups) > 0 {
		s.state.Lookups = make(map[string][]portssvc.LookupOption, len(s.cfg.Lookups))
		for i, lookup := range s.cfg.Lookups {
			s.state.Lookups[lookup.Name] = lookups[i]
		}
	}
	s.LogDebug(ctx, "Screen loaded", slog.String("screen", s.cfg.Name), slog.Int("count", len(items)))
	return nil
}

func (s *listScreen[T, F]) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetModal()
	s.state.Form = s.cfg.NewForm()
	s.state.ModalOpen = true
}

func (s *listScreen[T, F]) OpenEdit(id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%s %s: %w", s.cfg.Name, id, apperrors.ErrNotFound)
	}
	item := s.state.Items[idx]
	s.resetModal()
	s.state.Editing = &item
	s.state.Form = s.cfg.FormFrom(item)
	s.state.ModalOpen = true
	return nil
}

func (s *listScreen[T, F]) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetModal()
	s.state.Form = s.cfg.NewForm()
}

func (s *listScreen[T, F]) Submit(ctx context.Context, form F) error {
	s.mu.Lock()
	var current *T
	if s.state.Editing != nil {
		item := *s.state.Editing
		current = &item
	}
	s.state.FormError = ""
	s.state.FieldErrors = nil
	s.mu.Unlock()

	if errs := s.cfg.Validate(&form); len(errs) > 0 {
		s.mu.Lock()
		s.state.Form = form
		s.state.FieldErrors = errs
		s.state.ModalOpen = true
		s.mu.Unlock()
		return apperrors.ErrValidation
	}

	item, err := s.cfg.Build(form, current)
	if err == nil {
		var stored *T
		if current == nil {
			stored, err = s.cfg.Repo.Create(ctx, item)
		} else {
			stored, err = s.cfg.Repo.Update(ctx, item)
		}
		if err == nil {
			return s.afterSave(ctx, stored, item, current)
		}
	}

	s.LogError(ctx, err, "Failed to save item", slog.String("screen", s.cfg.Name))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Form = form
	s.state.ModalOpen = true
	s.state.FormError = s.cfg.Messages.SaveFailed
	if msg, ok := apperrors.ServerMessage(err); ok {
		s.state.FormError = msg
		if field := fieldMentioned(msg, form); field != "" {
			s.state.FieldErrors = validation.FieldErrors{field: msg}
		}
	}
	return fmt.Errorf("saving %s: %w", s.cfg.Name, err)
}

func (s *listScreen[T, F]) afterSave(ctx context.Context, stored *T, sent T, previous *T) error {
	saved := sent
	if stored != nil {
		saved = *stored
	}

	s.mu.Lock()
	s.resetModal()
	s.state.Form = s.cfg.NewForm()
	if s.cfg.AfterSave == Patch {
		if s.cfg.Merge != nil {
			saved = s.cfg.Merge(saved, previous)
		}
		if previous == nil {
			s.state.Items = append(slices.Clone(s.state.Items), saved)
		} else {
			items := slices.Clone(s.state.Items)
			if idx := indexOf(items, (*previous).GetID()); idx >= 0 {
				items[idx] = saved
			}
			s.state.Items = items
		}
		s.mu.Unlock()
		s.LogInfo(ctx, "Item saved", slog.String("screen", s.cfg.Name), slog.String("id", saved.GetID().String()))
		return nil
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Item saved, reloading", slog.String("screen", s.cfg.Name), slog.String("id", saved.GetID().String()))
	return s.Load(ctx)
}

func (s *listScreen[T, F]) Delete(ctx context.Context, id domain.ID, confirm portssvc.Confirmer) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%s %s: %w", s.cfg.Name, id, apperrors.ErrNotFound)
	}
	item := s.state.Items[idx]
	s.state.ConfirmPrompt = ""
	s.state.ConfirmID = ""
	s.mu.Unlock()

	if confirm == nil || !confirm(s.cfg.Messages.ConfirmDelete) {
		s.mu.Lock()
		s.state.ConfirmPrompt = s.cfg.Messages.ConfirmDelete
		s.state.ConfirmID = id
		s.mu.Unlock()
		return apperrors.ErrDeclined
	}

	if err := s.cfg.Repo.Delete(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to delete item", slog.String("screen", s.cfg.Name), slog.String("id", id.String()))
		s.mu.Lock()
		s.state.Error = s.cfg.Messages.DeleteFailed
		s.mu.Unlock()
		return fmt.Errorf("deleting %s %s: %w", s.cfg.Name, id, err)
	}

	s.LogInfo(ctx, "Item deleted", slog.String("screen", s.cfg.Name), slog.String("id", id.String()))
	if s.cfg.AfterDelete == Refetch {
		return s.Load(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = slices.DeleteFunc(slices.Clone(s.state.Items), func(it T) bool { return it.GetID() == id })
	s.state.Error = ""
	return nil
}

func (s *listScreen[T, F]) State() portssvc.ScreenState[T, F] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Items = slices.Clone(s.state.Items)
	if st.Items == nil {
		st.Items = []T{}
	}
	return st
}

// resetModal must be called with mu held.
func (s *listScreen[T, F]) resetModal() {
	s.state.ModalOpen = false
	s.state.Editing = nil
	s.state.FieldErrors = nil
	s.state.FormError = ""
}

// indexOf must be called with mu held.
func (s *listScreen[T, F]) indexOf(id domain.ID) int {
	return indexOf(s.state.Items, id)
}

func indexOf[T portsrepo.Entity](items []T, id domain.ID) int {
	return slices.IndexFunc(items, func(it T) bool { return it.GetID() == id })
}

// fieldMentioned returns the form field a backend message talks about, if any.
func fieldMentioned(msg string, form any) string {
	fields := validation.FieldNames(form)
	lower := strings.ToLower(msg)
	for _, f := range fields {
		if f != "" && strings.Contains(lower, strings.ToLower(f)) {
			return f
		}
	}
	return ""
}
