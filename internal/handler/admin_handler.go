package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"careconnect/internal/service"
)

// AdminHandler handles the back-office payment and reporting endpoints.
type AdminHandler struct {
	backoffice service.BackofficeService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(backoffice service.BackofficeService) *AdminHandler {
	return &AdminHandler{backoffice: backoffice}
}

// SelectionRequest carries the schedule ids a bulk action operates on.
type SelectionRequest struct {
	ScheduleIDs []string `json:"schedule_ids" validate:"required,min=1,dive,uuid"`
}

// RateActionRequest carries a bulk rate adjustment.
type RateActionRequest struct {
	ScheduleIDs []string `json:"schedule_ids" validate:"required,min=1,dive,uuid"`
	Action      string   `json:"action" validate:"required,oneof=increase decrease"`
}

func parseSelection(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// ListReports godoc
// @Summary List all schedules with duration, estimated cost and status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.ScheduleReport
// @Router /admin/schedules [get]
func (h *AdminHandler) ListReports(c echo.Context) error {
	reports, err := h.backoffice.ListReports(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, reports)
}

// AdjustRates godoc
// @Summary Bulk-adjust hourly rates by ±10%
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RateActionRequest true "Selection and action"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/schedules/rates [post]
func (h *AdminHandler) AdjustRates(c echo.Context) error {
	var req RateActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ids, err := parseSelection(req.ScheduleIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	updated, err := h.backoffice.AdjustRates(c.Request().Context(), ids, req.Action == "increase")
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"updated": updated})
}

// ExportCSV godoc
// @Summary Export the payments report for selected schedules as CSV
// @Tags admin
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param request body SelectionRequest true "Selection"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/schedules/export [post]
func (h *AdminHandler) ExportCSV(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ids, err := parseSelection(req.ScheduleIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	payload, err := h.backoffice.ExportCSV(c.Request().Context(), ids)
	if err != nil {
		return domainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="payments_report.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// SendReminders godoc
// @Summary Send reminder emails for selected schedules
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectionRequest true "Selection"
// @Success 200 {object} service.ReminderSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/schedules/remind [post]
func (h *AdminHandler) SendReminders(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ids, err := parseSelection(req.ScheduleIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	summary, err := h.backoffice.SendReminders(c.Request().Context(), ids)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
