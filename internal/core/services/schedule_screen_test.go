package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/core/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleScreen_HoursOutsideRangeAreRejected(t *testing.T) {
	for _, hours := range []string{"0.25", "0", "24.5", "25", "abc"} {
		t.Run(hours, func(t *testing.T) {
			repo := new(MockCollectionRepository[domain.Schedule])
			screen := services.NewScheduleScreen(repo, new(MockCollectionRepository[domain.Workplace]), new(MockCollectionRepository[domain.Employee]))
			screen.OpenCreate()

			err := screen.Submit(context.Background(), dto.ScheduleForm{WorkplaceID: "10", EmployeeID: "1", Date: "2025-03-03", Hours: hours})

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.True(t, screen.State().FieldErrors.Has("hours"))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestScheduleScreen_BoundaryHoursAreAccepted(t *testing.T) {
	for _, hours := range []string{"0.5", "24", "7,5"} {
		t.Run(hours, func(t *testing.T) {
			repo := new(MockCollectionRepository[domain.Schedule])
			workplaces := new(MockCollectionRepository[domain.Workplace])
			employees := new(MockCollectionRepository[domain.Employee])
			workplaces.On("List", mock.Anything).Return([]domain.Workplace{}, nil)
			employees.On("List", mock.Anything).Return([]domain.Employee{}, nil)
			repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Schedule{ID: "1"}, nil).Once()
			repo.On("List", mock.Anything).Return([]domain.Schedule{}, nil).Once()

			screen := services.NewScheduleScreen(repo, workplaces, employees)
			screen.OpenCreate()

			err := screen.Submit(context.Background(), dto.ScheduleForm{WorkplaceID: "10", EmployeeID: "1", Date: "2025-03-03", Hours: hours})

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestScheduleScreen_DefaultForm(t *testing.T) {
	repo := new(MockCollectionRepository[domain.Schedule])
	screen := services.NewScheduleScreen(repo, new(MockCollectionRepository[domain.Workplace]), new(MockCollectionRepository[domain.Employee]))

	screen.OpenCreate()

	form := screen.State().Form
	assert.Equal(t, "8", form.Hours)
	assert.Equal(t, domain.Today().String(), form.Date)
}

func TestScheduleScreen_DeleteRefetches(t *testing.T) {
	repo := new(MockCollectionRepository[domain.Schedule])
	workplaces := new(MockCollectionRepository[domain.Workplace])
	employees := new(MockCollectionRepository[domain.Employee])
	workplaces.On("List", mock.Anything).Return([]domain.Workplace{headOffice()}, nil)
	employees.On("List", mock.Anything).Return([]domain.Employee{jan()}, nil)

	shift := domain.Schedule{ID: "3", WorkplaceID: "10", EmployeeID: "1", Date: mustDay("2025-03-03"), Hours: 8}
	repo.On("List", mock.Anything).Return([]domain.Schedule{shift}, nil).Once()
	repo.On("Delete", mock.Anything, shift).Return(nil).Once()
	repo.On("List", mock.Anything).Return([]domain.Schedule{}, nil).Once()

	screen := services.NewScheduleScreen(repo, workplaces, employees)
	require.NoError(t, screen.Load(context.Background()))

	require.NoError(t, screen.Delete(context.Background(), "3", confirmAlways))

	assert.Empty(t, screen.State().Items)
	assert.Equal(t, "Brak zaplanowanych grafików", screen.State().Empty)
	repo.AssertExpectations(t)
}
