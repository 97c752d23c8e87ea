package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"careconnect/internal/auth"
	"careconnect/internal/model"
)

func contextWithRole(role model.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &auth.Claims{UserID: "id", Role: role}})
	return c, rec
}

func TestRequireRole(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name    string
		allowed []model.Role
		role    model.Role
		wantOK  bool
	}{
		{name: "matching role passes", allowed: []model.Role{model.RoleCaregiver}, role: model.RoleCaregiver, wantOK: true},
		{name: "one of several passes", allowed: []model.Role{model.RoleFamily, model.RoleAdmin}, role: model.RoleAdmin, wantOK: true},
		{name: "wrong role is forbidden", allowed: []model.Role{model.RoleAdmin}, role: model.RoleCaregiver},
		{name: "family cannot reach caregiver routes", allowed: []model.Role{model.RoleCaregiver}, role: model.RoleFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextWithRole(tt.role)
			err := requireRole(tt.allowed...)(next)(c)

			if tt.wantOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, http.StatusForbidden, httpErr.Code)
		})
	}
}

func TestRequireRole_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := requireRole(model.RoleAdmin)(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
