package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"careconnect/internal/auth"
	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
)

// actor identifies the authenticated caller of a request.
type actor struct {
	ID    uuid.UUID
	Email string
	Role  model.Role
}

// actorFromContext extracts the authenticated actor from the JWT middleware.
func actorFromContext(c echo.Context) (*actor, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return &actor{ID: id, Email: claims.Email, Role: claims.Role}, nil
}

// domainError converts a service error into an echo HTTP error using the
// shared mapping.
func domainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
