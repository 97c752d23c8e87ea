package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"careconnect/internal/model"
	"careconnect/internal/service"
)

// CaregiverHandler handles caregiver-facing endpoints: dashboard, profile,
// requests and the caregiving log.
type CaregiverHandler struct {
	profileService service.ProfileService
	requestService service.RequestService
	logService     service.LogService
}

// NewCaregiverHandler creates a new caregiver handler.
func NewCaregiverHandler(profileService service.ProfileService, requestService service.RequestService, logService service.LogService) *CaregiverHandler {
	return &CaregiverHandler{
		profileService: profileService,
		requestService: requestService,
		logService:     logService,
	}
}

// CaregiverProfileRequest represents a caregiver profile submission.
type CaregiverProfileRequest struct {
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergency_contact"`
}

// LogRequest represents a caregiving log submission.
type LogRequest struct {
	ElderlyID string `json:"elderly_id" validate:"required,uuid"`
	Task      string `json:"task" validate:"required"`
	Notes     string `json:"notes"`
}

// Dashboard godoc
// @Summary Caregiver dashboard: own profile (null until created) and the elderly roster
// @Tags caregiver
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /caregiver/dashboard [get]
func (h *CaregiverHandler) Dashboard(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	profile, roster, err := h.profileService.CaregiverDashboard(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile": profile,
		"elderly": roster,
	})
}

// CreateProfile godoc
// @Summary Create the caregiver's profile (once)
// @Tags caregiver
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CaregiverProfileRequest true "Profile data"
// @Success 201 {object} model.CaregiverProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /caregiver/profile [post]
func (h *CaregiverHandler) CreateProfile(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req CaregiverProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)

	profile, err := h.profileService.CreateCaregiverProfile(c.Request().Context(), act.ID, service.CaregiverProfileInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// ListRequests godoc
// @Summary List care requests targeting the caregiver
// @Tags caregiver
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CaregiverRequest
// @Failure 404 {object} errors.ErrorResponse
// @Router /caregiver/requests [get]
func (h *CaregiverHandler) ListRequests(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	requests, err := h.requestService.ListForCaregiver(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// AcceptRequest godoc
// @Summary Accept a pending care request
// @Tags caregiver
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.CaregiverRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /caregiver/requests/{id}/accept [post]
func (h *CaregiverHandler) AcceptRequest(c echo.Context) error {
	return h.resolveRequest(c, model.RequestStatusAccepted)
}

// DeclineRequest godoc
// @Summary Decline a pending care request
// @Tags caregiver
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.CaregiverRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /caregiver/requests/{id}/decline [post]
func (h *CaregiverHandler) DeclineRequest(c echo.Context) error {
	return h.resolveRequest(c, model.RequestStatusDeclined)
}

func (h *CaregiverHandler) resolveRequest(c echo.Context, status model.RequestStatus) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}

	request, err := h.requestService.Resolve(c.Request().Context(), act.ID, requestID, status)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, request)
}

// AppendLog godoc
// @Summary Append a caregiving log entry
// @Tags caregiver
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogRequest true "Log entry"
// @Success 201 {object} model.CaregivingLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /caregiver/logs [post]
func (h *CaregiverHandler) AppendLog(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req LogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	elderlyID, _ := uuid.Parse(req.ElderlyID)

	entry, err := h.logService.AppendLog(c.Request().Context(), act.ID, elderlyID, req.Task, req.Notes)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// ListLogs godoc
// @Summary List the caregiver's log entries, optionally for one elderly person
// @Tags caregiver
// @Produce json
// @Security BearerAuth
// @Param elderly_id query string false "Elderly profile ID"
// @Success 200 {array} model.CaregivingLog
// @Failure 404 {object} errors.ErrorResponse
// @Router /caregiver/logs [get]
func (h *CaregiverHandler) ListLogs(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if raw := c.QueryParam("elderly_id"); raw != "" {
		elderlyID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid elderly id")
		}
		entries, err := h.logService.LogsByElderly(c.Request().Context(), elderlyID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, entries)
	}

	entries, err := h.logService.LogsByCaregiver(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
