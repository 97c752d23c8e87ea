package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
	"careconnect/internal/repository"
	"careconnect/internal/strategy"
)

// ScheduleService handles schedule creation, listing and caregiver
// confirmation.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, familyID uuid.UUID, input ScheduleInput) (*model.Schedule, error)
	// ListSchedules applies at most one filter: location takes precedence over
	// maxRate when both are supplied.
	ListSchedules(ctx context.Context, location string, maxRate *decimal.Decimal) ([]model.Schedule, error)
	ConfirmSchedule(ctx context.Context, actorID uuid.UUID, actorRole model.Role, scheduleID uuid.UUID) (*model.CaregiverAssignment, error)
	MyAssignments(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverAssignment, error)
}

// ScheduleInput carries schedule form fields.
type ScheduleInput struct {
	ElderlyID  uuid.UUID
	Date       time.Time
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Location   string
	TaskList   string
	HourlyRate decimal.Decimal
}

type scheduleService struct {
	scheduleRepo   repository.ScheduleRepository
	assignmentRepo repository.AssignmentRepository
	elderlyRepo    repository.ElderlyProfileRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(scheduleRepo repository.ScheduleRepository, assignmentRepo repository.AssignmentRepository, elderlyRepo repository.ElderlyProfileRepository) ScheduleService {
	return &scheduleService{
		scheduleRepo:   scheduleRepo,
		assignmentRepo: assignmentRepo,
		elderlyRepo:    elderlyRepo,
	}
}

// CreateSchedule creates a schedule for an elderly profile the caller owns.
// Ownership is re-validated here against the submitted id, not only in the
// choices a client was shown, so a crafted foreign id fails as not-found.
func (s *scheduleService) CreateSchedule(ctx context.Context, familyID uuid.UUID, input ScheduleInput) (*model.Schedule, error) {
	if _, err := s.elderlyRepo.FindOwned(ctx, input.ElderlyID, familyID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrElderlyNotFound
		}
		return nil, fmt.Errorf("resolve elderly: %w", err)
	}

	start, err := ParseClock(input.StartTime)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeWindow
	}
	end, err := ParseClock(input.EndTime)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeWindow
	}
	// overnight spans are rejected rather than interpreted as crossing midnight
	if end <= start {
		return nil, apperrors.ErrInvalidTimeWindow
	}

	schedule := &model.Schedule{
		ElderlyID:  input.ElderlyID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Location:   input.Location,
		TaskList:   input.TaskList,
		HourlyRate: input.HourlyRate,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, location string, maxRate *decimal.Decimal) ([]model.Schedule, error) {
	var st strategy.ScheduleStrategy = strategy.AllSchedules{}
	switch {
	case location != "":
		st = strategy.ByLocation{Location: location}
	case maxRate != nil:
		st = strategy.ByMaxRate{MaxRate: *maxRate}
	}
	return s.scheduleRepo.List(ctx, st)
}

// ConfirmSchedule records the caregiver's claim on a schedule. Only the
// caregiver role may confirm, and a duplicate confirmation for the same
// (schedule, caregiver) pair is rejected rather than upserted.
func (s *scheduleService) ConfirmSchedule(ctx context.Context, actorID uuid.UUID, actorRole model.Role, scheduleID uuid.UUID) (*model.CaregiverAssignment, error) {
	if actorRole != model.RoleCaregiver {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.scheduleRepo.FindByID(ctx, scheduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("resolve schedule: %w", err)
	}

	exists, err := s.assignmentRepo.Exists(ctx, scheduleID, actorID)
	if err != nil {
		return nil, fmt.Errorf("check assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyConfirmed
	}

	assignment := &model.CaregiverAssignment{
		ScheduleID:  scheduleID,
		CaregiverID: actorID,
		Confirmed:   true,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		// the unique index catches the read-then-write race
		if isDuplicateKey(err) {
			return nil, apperrors.ErrAlreadyConfirmed
		}
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

func (s *scheduleService) MyAssignments(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverAssignment, error) {
	return s.assignmentRepo.ListByCaregiver(ctx, caregiverID)
}

func isDuplicateKey(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
