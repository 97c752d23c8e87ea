package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"careconnect/internal/service"
)

// ScheduleHandler handles schedule listing and caregiver confirmation.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// List godoc
// @Summary List schedules, optionally filtered by location or max hourly rate
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param location query string false "Location substring (case-insensitive)"
// @Param max_rate query string false "Hourly rate ceiling"
// @Success 200 {array} model.Schedule
// @Failure 400 {object} errors.ErrorResponse
// @Router /schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	location := c.QueryParam("location")

	var maxRate *decimal.Decimal
	if raw := c.QueryParam("max_rate"); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_rate")
		}
		maxRate = &rate
	}

	schedules, err := h.scheduleService.ListSchedules(c.Request().Context(), location, maxRate)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// Confirm godoc
// @Summary Confirm caregiving for a schedule (caregiver role only)
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 201 {object} model.CaregiverAssignment
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /schedules/{id}/confirm [post]
func (h *ScheduleHandler) Confirm(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	assignment, err := h.scheduleService.ConfirmSchedule(c.Request().Context(), act.ID, act.Role, scheduleID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

// MyAssignments godoc
// @Summary List the caller's confirmed assignments
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CaregiverAssignment
// @Router /schedules/assignments [get]
func (h *ScheduleHandler) MyAssignments(c echo.Context) error {
	act, err := actorFromContext(c)
	if err != nil {
		return err
	}

	assignments, err := h.scheduleService.MyAssignments(c.Request().Context(), act.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, assignments)
}
