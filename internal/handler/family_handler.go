package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"careconnect/internal/service"
)

// FamilyHandler handles family-member endpoints: dashboard, elderly profiles,
// schedules and caregiver requests.
type FamilyHandler struct {
	profileService  service.ProfileService
	scheduleService service.ScheduleService
	requestService  service.RequestService
}

// NewFamilyHandler creates a new family handler.
func NewFamilyHandler(profileService service.ProfileService, scheduleService service.ScheduleService, requestService service.RequestService) *FamilyHandler {
	return &FamilyHandler{
		profileService:  profileService,
		scheduleService: scheduleService,
		requestService:  requestService,
	}
}

// ElderlyProfileRequest represents an elderly profile submission.
type ElderlyProfileRequest struct {
	Name             string `json:"name" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender"`
	MedicalCondition string `json:"medical_condition"`
	Location         string `json:"location" validate:"required"`
}

// ScheduleRequest represents a care schedule submission.
type ScheduleRequest struct {
	ElderlyID  string `json:"elderly_id" validate:"required,uuid"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	Location   string `json:"location" validate:"required"`
	TaskList   string `json:"task_list"`
	HourlyRate string `json:"hourly_rate" validate:"required"`
}

// CareRequestRequest represents a caregiver request submission.
type CareRequestRequest struct {
	CaregiverID string `json:"caregiver_id" validate:"required,uuid"`
	ElderlyID   string `json:"elderly_id" validate:"required,uuid"`
}

// Dashboard godoc
// @Summary Family dashboard: elderly profiles owned by the caller
// @Tags family
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ElderlyProfile
// @Failure 401 {object} errors.ErrorResponse
// @Router /family/dashboard [get]
func (h *FamilyHandler) Dashboard(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	elderly, err := h.profileService.FamilyDashboard(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, elderly)
}

// CreateElderly godoc
// @Summary Register an elderly profile owned by the caller
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ElderlyProfileRequest true "Elderly profile data"
// @Success 201 {object} model.ElderlyProfile
// @Failure 400 {object} errors.ErrorResponse
// @Router /family/elderly [post]
func (h *FamilyHandler) CreateElderly(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req ElderlyProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)

	profile, err := h.profileService.CreateElderlyProfile(c.Request().Context(), act.ID, service.ElderlyProfileInput{
		Name:             req.Name,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		MedicalCondition: req.MedicalCondition,
		Location:         req.Location,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// CreateSchedule godoc
// @Summary Create a care schedule for an owned elderly profile
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScheduleRequest true "Schedule data"
// @Success 201 {object} model.Schedule
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /family/schedules [post]
func (h *FamilyHandler) CreateSchedule(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	elderlyID, _ := uuid.Parse(req.ElderlyID)
	date, _ := time.Parse("2006-01-02", req.Date)
	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil || rate.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hourly rate")
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request().Context(), act.ID, service.ScheduleInput{
		ElderlyID:  elderlyID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Location:   req.Location,
		TaskList:   req.TaskList,
		HourlyRate: rate,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, schedule)
}

// CreateRequest godoc
// @Summary Request a caregiver for an owned elderly profile
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CareRequestRequest true "Request data"
// @Success 201 {object} model.CaregiverRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /family/requests [post]
func (h *FamilyHandler) CreateRequest(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req CareRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	caregiverID, _ := uuid.Parse(req.CaregiverID)
	elderlyID, _ := uuid.Parse(req.ElderlyID)

	request, err := h.requestService.CreateRequest(c.Request().Context(), act.ID, caregiverID, elderlyID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

// ListRequests godoc
// @Summary List the caller's caregiver requests
// @Tags family
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CaregiverRequest
// @Router /family/requests [get]
func (h *FamilyHandler) ListRequests(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	requests, err := h.requestService.ListForFamily(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, requests)
}
