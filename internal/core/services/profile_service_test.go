package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/core/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	repo    *MockProfileRepository
	service portssvc.ProfileSvc
	ctx     context.Context
	stored  *domain.Profile
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.repo = new(MockProfileRepository)
	suite.service = services.NewProfileService(suite.repo)
	suite.ctx = context.Background()
	suite.stored = &domain.Profile{Email: "jan@example.com", FirstName: "Jan", LastName: "Kowalski"}
}

func (suite *ProfileServiceTestSuite) form() dto.ProfileForm {
	return dto.ProfileForm{Email: "jan@example.com", FirstName: "Jan", LastName: "Kowalski"}
}

func (suite *ProfileServiceTestSuite) TestLoad() {
	suite.repo.On("GetProfile", suite.ctx).Return(suite.stored, nil).Once()

	state, err := suite.service.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(suite.form(), state.Form)
}

func (suite *ProfileServiceTestSuite) TestSave_UnchangedProfileSendsNothing() {
	suite.repo.On("GetProfile", suite.ctx).Return(suite.stored, nil).Once()

	state, err := suite.service.Save(suite.ctx, suite.form())

	suite.Require().NoError(err)
	suite.Equal("Profil został zaktualizowany", state.Success)
	suite.repo.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything)
	suite.repo.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestSave_ChangedNameOnly() {
	suite.repo.On("GetProfile", suite.ctx).Return(suite.stored, nil).Once()
	updated := domain.Profile{Email: "jan@example.com", FirstName: "Janusz", LastName: "Kowalski"}
	suite.repo.On("UpdateProfile", suite.ctx, updated).Return(&updated, nil).Once()

	form := suite.form()
	form.FirstName = "Janusz"
	state, err := suite.service.Save(suite.ctx, form)

	suite.Require().NoError(err)
	suite.Equal("Janusz", state.Form.FirstName)
	suite.repo.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestSave_PasswordChangeClearsFields() {
	suite.repo.On("GetProfile", suite.ctx).Return(suite.stored, nil).Once()
	suite.repo.On("ChangePassword", suite.ctx, domain.PasswordChange{CurrentPassword: "old-secret", NewPassword: "new-secret"}).
		Return(nil).Once()

	form := suite.form()
	form.CurrentPassword = "old-secret"
	form.NewPassword = "new-secret"
	form.ConfirmPassword = "new-secret"
	state, err := suite.service.Save(suite.ctx, form)

	suite.Require().NoError(err)
	suite.Equal("Profil został zaktualizowany", state.Success)
	suite.Empty(state.Form.CurrentPassword)
	suite.Empty(state.Form.NewPassword)
	suite.Empty(state.Form.ConfirmPassword)
	suite.repo.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestSave_IncompletePasswordGroupIsRejected() {
	form := suite.form()
	form.NewPassword = "new-secret"

	state, err := suite.service.Save(suite.ctx, form)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.True(state.FieldErrors.Has("currentPassword"))
	suite.True(state.FieldErrors.Has("confirmPassword"))
	suite.repo.AssertNotCalled(suite.T(), "GetProfile", mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestSave_Failure() {
	suite.repo.On("GetProfile", suite.ctx).Return(suite.stored, nil).Once()
	suite.repo.On("ChangePassword", suite.ctx, mock.Anything).
		Return(&apperrors.APIError{Status: 400, Message: "Invalid current password"}).Once()

	form := suite.form()
	form.CurrentPassword = "bad-secret"
	form.NewPassword = "new-secret"
	form.ConfirmPassword = "new-secret"
	state, err := suite.service.Save(suite.ctx, form)

	suite.Require().Error(err)
	suite.Equal("Nie udało się zaktualizować profilu", state.Error)
	suite.Empty(state.Success)
	suite.Empty(state.Form.CurrentPassword)
}

func (suite *ProfileServiceTestSuite) TestLoad_Failure() {
	suite.repo.On("GetProfile", suite.ctx).Return(nil, assert.AnError).Once()

	state, err := suite.service.Load(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
	suite.NotEmpty(state.Error)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
