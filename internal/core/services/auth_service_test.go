package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/core/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	sessions *MockSessionRepository
	auth     *MockAuthenticator
	service  *services.AuthService
	now      time.Time
	ctx      context.Context
	ids      int
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.sessions = new(MockSessionRepository)
	suite.auth = new(MockAuthenticator)
	suite.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.ids = 0
	suite.service = services.NewAuthService(suite.sessions, suite.auth,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithSessionTTL(8*time.Hour),
		services.WithSessionIDs(func() string {
			suite.ids++
			return fmt.Sprintf("sid-%d", suite.ids)
		}),
	)
}

func (suite *AuthServiceTestSuite) backendToken(exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend"))
	suite.Require().NoError(err)
	return token
}

func (suite *AuthServiceTestSuite) TestRestore_UnknownCookieGivesAnonymousSession() {
	suite.sessions.On("FindSessionByID", suite.ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.Restore(suite.ctx, "gone")

	suite.Require().NoError(err)
	suite.Equal("sid-1", session.ID)
	suite.False(suite.service.IsAuthenticated(session))
	suite.Equal(suite.now.Add(8*time.Hour), session.ExpiresAt)
}

func (suite *AuthServiceTestSuite) TestRestore_NoCookie() {
	session, err := suite.service.Restore(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Equal("sid-1", session.ID)
	suite.sessions.AssertNotCalled(suite.T(), "FindSessionByID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRestore_SignedInSession() {
	stored := &domain.Session{ID: "abc", Token: "t", ExpiresAt: suite.now.Add(time.Hour)}
	suite.sessions.On("FindSessionByID", suite.ctx, "abc").Return(stored, nil).Once()

	session, err := suite.service.Restore(suite.ctx, "abc")

	suite.Require().NoError(err)
	suite.Same(stored, session)
	suite.True(suite.service.IsAuthenticated(session))
}

func (suite *AuthServiceTestSuite) TestRestore_ExpiredSessionIsDropped() {
	stored := &domain.Session{ID: "old", Token: "t", ExpiresAt: suite.now.Add(-time.Minute)}
	suite.sessions.On("FindSessionByID", suite.ctx, "old").Return(stored, nil).Once()
	suite.sessions.On("DeleteSession", suite.ctx, "old").Return(nil).Once()

	session, err := suite.service.Restore(suite.ctx, "old")

	suite.Require().NoError(err)
	suite.Equal("sid-1", session.ID)
	suite.Empty(session.Token)
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRestore_StoreFailure() {
	suite.sessions.On("FindSessionByID", suite.ctx, "abc").Return(nil, assert.AnError).Once()

	session, err := suite.service.Restore(suite.ctx, "abc")

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(session)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	exp := suite.now.Add(2 * time.Hour)
	token := suite.backendToken(exp)
	user := &domain.User{ID: "1", Email: "jan@example.com", FirstName: "Jan"}

	suite.auth.On("Login", suite.ctx, domain.Credentials{Email: "jan@example.com", Password: "secret1"}).
		Return(token, user, nil).Once()
	suite.sessions.On("SaveSession", suite.ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.ID == "sid-1" && s.Token == token && s.ExpiresAt.Equal(exp) && s.User == user
	})).Return(nil).Once()
	suite.sessions.On("DeleteSession", suite.ctx, "anon").Return(nil).Once()

	state, err := suite.service.Login(suite.ctx, session, dto.LoginForm{Email: "jan@example.com", Password: "secret1"})

	suite.Require().NoError(err)
	suite.Empty(state.Error)
	suite.Equal("sid-1", session.ID, "the session id is rotated on sign-in")
	suite.True(suite.service.IsAuthenticated(session))
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_TokenOutlivingTTLIsCapped() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	token := suite.backendToken(suite.now.Add(30 * 24 * time.Hour))
	suite.auth.On("Login", suite.ctx, mock.Anything).Return(token, nil, nil).Once()
	suite.sessions.On("SaveSession", suite.ctx, mock.Anything).Return(nil).Once()
	suite.sessions.On("DeleteSession", suite.ctx, "anon").Return(nil).Once()

	_, err := suite.service.Login(suite.ctx, session, dto.LoginForm{Email: "jan@example.com", Password: "secret1"})

	suite.Require().NoError(err)
	suite.Equal(suite.now.Add(8*time.Hour), session.ExpiresAt)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongCredentials() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	suite.auth.On("Login", suite.ctx, mock.Anything).
		Return("", nil, &apperrors.APIError{Status: 401, Message: "Niepoprawny email lub hasło"}).Once()

	state, err := suite.service.Login(suite.ctx, session, dto.LoginForm{Email: "jan@example.com", Password: "wrong-pass"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("Nieprawidłowy email lub hasło", state.Error)
	suite.Equal("anon", session.ID)
	suite.False(suite.service.IsAuthenticated(session))
	suite.sessions.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_InvalidFormSendsNothing() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)

	state, err := suite.service.Login(suite.ctx, session, dto.LoginForm{Email: "jan", Password: "123"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.True(state.FieldErrors.Has("email"))
	suite.True(state.FieldErrors.Has("password"))
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_ThenSignsIn() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	form := dto.RegisterForm{Email: "anna@example.com", Password: "secret1", FirstName: "Anna", LastName: "Nowak"}
	suite.auth.On("Register", suite.ctx, domain.Registration{Email: "anna@example.com", Password: "secret1", FirstName: "Anna", LastName: "Nowak"}).
		Return(nil).Once()
	suite.auth.On("Login", suite.ctx, domain.Credentials{Email: "anna@example.com", Password: "secret1"}).
		Return("opaque-token", &domain.User{ID: "2"}, nil).Once()
	suite.sessions.On("SaveSession", suite.ctx, mock.Anything).Return(nil).Once()
	suite.sessions.On("DeleteSession", suite.ctx, "anon").Return(nil).Once()

	state, err := suite.service.Register(suite.ctx, session, form)

	suite.Require().NoError(err)
	suite.Empty(state.Error)
	suite.Equal("opaque-token", session.Token)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_ServerMessageIsShown() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	suite.auth.On("Register", suite.ctx, mock.Anything).
		Return(&apperrors.APIError{Status: 400, Message: "Email already registered"}).Once()

	state, err := suite.service.Register(suite.ctx, session, dto.RegisterForm{Email: "anna@example.com", Password: "secret1", FirstName: "Anna", LastName: "Nowak"})

	suite.Require().Error(err)
	suite.Equal("Email already registered", state.Error)
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_GenericFailure() {
	session := domain.NewSession("anon", suite.now, 8*time.Hour)
	suite.auth.On("Register", suite.ctx, mock.Anything).Return(apperrors.ErrTransport).Once()

	state, err := suite.service.Register(suite.ctx, session, dto.RegisterForm{Email: "anna@example.com", Password: "secret1", FirstName: "Anna", LastName: "Nowak"})

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.Equal("Błąd rejestracji. Spróbuj ponownie.", state.Error)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	session := &domain.Session{ID: "abc", Token: "t", ExpiresAt: suite.now.Add(time.Hour), User: &domain.User{ID: "1"}}
	suite.sessions.On("DeleteSession", suite.ctx, "abc").Return(nil).Once()

	suite.Require().NoError(suite.service.Logout(suite.ctx, session))

	suite.False(suite.service.IsAuthenticated(session))
	suite.Nil(session.User)
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestPurgeExpiredSessions() {
	suite.sessions.On("DeleteExpiredSessions", suite.ctx, suite.now).Return(int64(3), nil).Once()

	n, err := suite.service.PurgeExpiredSessions(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), n)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
