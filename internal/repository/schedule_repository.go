package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"careconnect/internal/model"
	"careconnect/internal/strategy"
)

// ScheduleRepository defines schedule persistence operations.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	// List returns schedules selected by the given strategy, with the elderly
	// profile preloaded.
	List(ctx context.Context, st strategy.ScheduleStrategy) ([]model.Schedule, error)
	// FindByIDs resolves the selected rows for back-office batch actions,
	// preloading the elderly profile and its owning family member.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Schedule, error)
	UpdateRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) List(ctx context.Context, st strategy.ScheduleStrategy) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.WithContext(ctx).
		Scopes(st.Scope()).
		Preload("Elderly").
		Order("date, start_time").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if len(ids) == 0 {
		return schedules, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Preload("Elderly").
		Preload("Elderly.FamilyMember").
		Order("date, start_time").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) UpdateRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Schedule{}).
		Where("id = ?", id).
		Update("hourly_rate", rate).Error
}

// AssignmentRepository defines caregiver assignment persistence operations.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.CaregiverAssignment) error
	Exists(ctx context.Context, scheduleID, caregiverID uuid.UUID) (bool, error)
	ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.CaregiverAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) Exists(ctx context.Context, scheduleID, caregiverID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CaregiverAssignment{}).
		Where("schedule_id = ? AND caregiver_id = ?", scheduleID, caregiverID).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverAssignment, error) {
	var assignments []model.CaregiverAssignment
	if err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Preload("Schedule").
		Preload("Schedule.Elderly").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
