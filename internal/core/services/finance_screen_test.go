package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/core/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FinanceScreenTestSuite struct {
	suite.Suite
	costs      *MockCollectionRepository[domain.FinanceEntry]
	revenues   *MockCollectionRepository[domain.FinanceEntry]
	workplaces *MockCollectionRepository[domain.Workplace]
	employees  *MockCollectionRepository[domain.Employee]
	costScreen portssvc.FinanceScreen
	revScreen  portssvc.FinanceScreen
	ctx        context.Context
}

func (suite *FinanceScreenTestSuite) SetupTest() {
	suite.costs = new(MockCollectionRepository[domain.FinanceEntry])
	suite.revenues = new(MockCollectionRepository[domain.FinanceEntry])
	suite.workplaces = new(MockCollectionRepository[domain.Workplace])
	suite.employees = new(MockCollectionRepository[domain.Employee])
	suite.costScreen = services.NewCostScreen(suite.costs, suite.workplaces, suite.employees)
	suite.revScreen = services.NewRevenueScreen(suite.revenues, suite.workplaces, suite.employees)
	suite.ctx = context.Background()

	suite.workplaces.On("List", mock.Anything).Return([]domain.Workplace{headOffice()}, nil)
	suite.employees.On("List", mock.Anything).Return([]domain.Employee{jan()}, nil)
}

func rent() domain.FinanceEntry {
	return domain.FinanceEntry{
		ID:            "5",
		Type:          domain.TargetWorkplace,
		WorkplaceID:   "10",
		WorkplaceName: "Head office",
		Description:   "Czynsz",
		Amount:        decimal.NewFromInt(2500),
		Date:          mustDay("2025-03-01"),
		StoredType:    domain.TargetWorkplace,
	}
}

func (suite *FinanceScreenTestSuite) TestLoad_JoinsLookups() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()

	suite.Require().NoError(suite.costScreen.Load(suite.ctx))

	state := suite.costScreen.State()
	suite.Len(state.Items, 1)
	suite.Equal([]portssvc.LookupOption{{ID: "10", Label: "Head office"}}, state.Lookups[services.LookupWorkplaces])
	suite.Equal([]portssvc.LookupOption{{ID: "1", Label: "Jan Kowalski"}}, state.Lookups[services.LookupEmployees])
}

func (suite *FinanceScreenTestSuite) TestLoad_LookupFailureFailsTheLoad() {
	employees := new(MockCollectionRepository[domain.Employee])
	employees.On("List", mock.Anything).Return(nil, assert.AnError)
	screen := services.NewCostScreen(suite.costs, suite.workplaces, employees)
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()

	err := screen.Load(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
	state := screen.State()
	suite.Equal("Nie udało się pobrać listy kosztów", state.Error)
	suite.Empty(state.Items)
}

func (suite *FinanceScreenTestSuite) TestSubmit_WorkplaceCostWithoutWorkplaceIsRejected() {
	suite.costScreen.OpenCreate()
	form := suite.costScreen.State().Form
	suite.Equal(string(domain.TargetWorkplace), form.Type)
	form.Amount = "100"

	err := suite.costScreen.Submit(suite.ctx, form)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Miejsce pracy jest wymagane", suite.costScreen.State().FieldErrors.Get("workplace_id"))
	suite.costs.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *FinanceScreenTestSuite) TestSubmit_EmployeeCostWithoutEmployeeIsRejected() {
	suite.costScreen.OpenCreate()

	err := suite.costScreen.Submit(suite.ctx, dto.FinanceForm{
		Type:        string(domain.TargetEmployee),
		WorkplaceID: "10",
		Amount:      "100",
		Date:        "2025-03-01",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	state := suite.costScreen.State()
	suite.True(state.FieldErrors.Has("employee_id"))
	suite.False(state.FieldErrors.Has("workplace_id"))
	suite.costs.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *FinanceScreenTestSuite) TestSubmit_CreateRefetches() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{}, nil).Once()
	suite.Require().NoError(suite.costScreen.Load(suite.ctx))
	suite.costScreen.OpenCreate()

	suite.costs.On("Create", mock.Anything, mock.MatchedBy(func(e domain.FinanceEntry) bool {
		return e.Type == domain.TargetWorkplace && e.WorkplaceID == "10" && e.EmployeeID.IsZero() &&
			e.Amount.Equal(decimal.RequireFromString("2500.5"))
	})).Return(&domain.FinanceEntry{ID: "5"}, nil).Once()
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()

	err := suite.costScreen.Submit(suite.ctx, dto.FinanceForm{
		Type:        string(domain.TargetWorkplace),
		WorkplaceID: "10",
		EmployeeID:  "1",
		Description: "Czynsz",
		Amount:      "2500,50",
		Date:        "2025-03-01",
	})

	suite.Require().NoError(err)
	state := suite.costScreen.State()
	suite.Require().Len(state.Items, 1)
	suite.Equal("Head office", state.Items[0].WorkplaceName, "joined names come from the reload")
	suite.False(state.ModalOpen)
	suite.costs.AssertExpectations(suite.T())
}

func (suite *FinanceScreenTestSuite) TestDelete_PatchesLocally() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()
	suite.Require().NoError(suite.costScreen.Load(suite.ctx))
	suite.costs.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	suite.Require().NoError(suite.costScreen.Delete(suite.ctx, "5", confirmAlways))

	suite.Empty(suite.costScreen.State().Items)
	suite.costs.AssertNumberOfCalls(suite.T(), "List", 1)
}

func (suite *FinanceScreenTestSuite) TestDelete_DeclinedKeepsCollection() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()
	suite.Require().NoError(suite.costScreen.Load(suite.ctx))

	err := suite.costScreen.Delete(suite.ctx, "5", confirmNever)

	suite.ErrorIs(err, apperrors.ErrDeclined)
	suite.Equal("Czy na pewno chcesz usunąć ten koszt?", suite.costScreen.State().ConfirmPrompt)
	suite.Len(suite.costScreen.State().Items, 1)
	suite.costs.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *FinanceScreenTestSuite) TestRevenueNeedsDescription() {
	suite.revScreen.OpenCreate()

	err := suite.revScreen.Submit(suite.ctx, dto.FinanceForm{
		Type:        string(domain.TargetWorkplace),
		WorkplaceID: "10",
		Amount:      "100",
		Date:        "2025-03-01",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Opis jest wymagany", suite.revScreen.State().FieldErrors.Get("description"))
	suite.revenues.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *FinanceScreenTestSuite) TestCostWithoutDescriptionIsAccepted() {
	suite.costScreen.OpenCreate()
	suite.costs.On("Create", mock.Anything, mock.Anything).Return(&domain.FinanceEntry{ID: "6"}, nil).Once()
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{}, nil).Once()

	err := suite.costScreen.Submit(suite.ctx, dto.FinanceForm{
		Type:       string(domain.TargetEmployee),
		EmployeeID: "1",
		Amount:     "100",
		Date:       "2025-03-01",
	})

	suite.Require().NoError(err)
	suite.costs.AssertExpectations(suite.T())
}

func (suite *FinanceScreenTestSuite) TestOpenEdit_FillsTargetFromEntry() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()
	suite.Require().NoError(suite.costScreen.Load(suite.ctx))

	suite.Require().NoError(suite.costScreen.OpenEdit("5"))

	form := suite.costScreen.State().Form
	suite.Equal("workplace", form.Type)
	suite.Equal("10", form.WorkplaceID)
	suite.Equal("2025-03-01", form.Date)
	suite.Equal("2500", form.Amount)
}

func (suite *FinanceScreenTestSuite) TestSubmit_RetargetedEditKeepsStoredType() {
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()
	suite.Require().NoError(suite.costScreen.Load(suite.ctx))
	suite.Require().NoError(suite.costScreen.OpenEdit("5"))

	suite.costs.On("Update", mock.Anything, mock.MatchedBy(func(e domain.FinanceEntry) bool {
		return e.ID == "5" && e.Type == domain.TargetEmployee && e.EmployeeID == "1" &&
			e.WorkplaceID == "" && e.PathType() == domain.TargetWorkplace
	})).Return(&domain.FinanceEntry{ID: "5"}, nil).Once()
	suite.costs.On("List", mock.Anything).Return([]domain.FinanceEntry{rent()}, nil).Once()

	form := suite.costScreen.State().Form
	form.Type = string(domain.TargetEmployee)
	form.EmployeeID = "1"
	err := suite.costScreen.Submit(suite.ctx, form)

	suite.Require().NoError(err)
	suite.False(suite.costScreen.State().ModalOpen)
	suite.costs.AssertExpectations(suite.T())
}

func TestFinanceScreenTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceScreenTestSuite))
}
