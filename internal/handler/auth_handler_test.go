package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
	"careconnect/internal/service"
)

// MockAuthService mocks service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, input service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestSignupHandler_Success(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService)

	user := &model.User{Username: "carol", Email: "carol@example.com", Role: model.RoleCaregiver}
	authService.On("Signup", mock.Anything, mock.MatchedBy(func(in service.SignupInput) bool {
		return in.Email == "carol@example.com" && in.Role == model.RoleCaregiver
	})).Return(user, nil)

	_, c, rec := newTestContext(`{
		"username": "carol",
		"email": "carol@example.com",
		"password": "Password1!",
		"password_confirm": "Password1!",
		"role": "caregiver"
	}`)

	assert.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "carol@example.com")
}

func TestSignupHandler_UnknownRole(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService)

	_, c, _ := newTestContext(`{
		"username": "carol",
		"email": "carol@example.com",
		"password": "Password1!",
		"password_confirm": "Password1!",
		"role": "superuser"
	}`)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	authService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignupHandler_PasswordPolicy(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService)

	authService.On("Signup", mock.Anything, mock.Anything).
		Return(nil, &service.PasswordPolicyError{Message: "password must contain at least one uppercase letter"})

	_, c, _ := newTestContext(`{
		"username": "carol",
		"email": "carol@example.com",
		"password": "password1!",
		"password_confirm": "password1!",
		"role": "caregiver"
	}`)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, "password must contain at least one uppercase letter", resp.Error)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService)

	authService.On("Login", mock.Anything, "carol@example.com", "WrongPass1!").
		Return(nil, apperrors.ErrInvalidCredentials)

	_, c, _ := newTestContext(`{"email": "carol@example.com", "password": "WrongPass1!"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLoginHandler_RedirectHint(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService)

	result := &service.LoginResult{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Redirect:     "/api/family/dashboard",
		User:         &model.User{Email: "frank@example.com", Role: model.RoleFamily},
	}
	authService.On("Login", mock.Anything, "frank@example.com", "Password1!").Return(result, nil)

	_, c, rec := newTestContext(`{"email": "frank@example.com", "password": "Password1!"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/family/dashboard")
}
