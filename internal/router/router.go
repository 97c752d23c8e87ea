package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"careconnect/internal/auth"
	"careconnect/internal/config"
	"careconnect/internal/handler"
	"careconnect/internal/model"
)

// Register wires routes and middleware. Every role-scoped group carries an
// explicit role check; the login redirect hint is a convenience, not the
// authorization boundary.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	caregiverHandler *handler.CaregiverHandler,
	familyHandler *handler.FamilyHandler,
	scheduleHandler *handler.ScheduleHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/api/auth/login")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Schedule browsing is open to any authenticated role; confirmation is
	// caregiver-only, enforced here and again in the service.
	secured.GET("/schedules", scheduleHandler.List)
	secured.POST("/schedules/:id/confirm", scheduleHandler.Confirm, requireRole(model.RoleCaregiver))
	secured.GET("/schedules/assignments", scheduleHandler.MyAssignments, requireRole(model.RoleCaregiver))

	// Caregiver routes
	caregiver := secured.Group("/caregiver", requireRole(model.RoleCaregiver))
	caregiver.GET("/dashboard", caregiverHandler.Dashboard)
	caregiver.POST("/profile", caregiverHandler.CreateProfile)
	caregiver.GET("/requests", caregiverHandler.ListRequests)
	caregiver.POST("/requests/:id/accept", caregiverHandler.AcceptRequest)
	caregiver.POST("/requests/:id/decline", caregiverHandler.DeclineRequest)
	caregiver.POST("/logs", caregiverHandler.AppendLog)
	caregiver.GET("/logs", caregiverHandler.ListLogs)

	// Family routes
	family := secured.Group("/family", requireRole(model.RoleFamily))
	family.GET("/dashboard", familyHandler.Dashboard)
	family.POST("/elderly", familyHandler.CreateElderly)
	family.POST("/schedules", familyHandler.CreateSchedule)
	family.POST("/requests", familyHandler.CreateRequest)
	family.GET("/requests", familyHandler.ListRequests)

	// Admin back-office routes
	admin := secured.Group("/admin", requireRole(model.RoleAdmin))
	admin.GET("/schedules", adminHandler.ListReports)
	admin.POST("/schedules/rates", adminHandler.AdjustRates)
	admin.POST("/schedules/export", adminHandler.ExportCSV)
	admin.POST("/schedules/remind", adminHandler.SendReminders)
}

// requireRole rejects callers whose token role is not in the allow-list.
func requireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "permission denied")
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
