package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careconnect/internal/model"
)

// LogRepository defines caregiving log persistence operations. The log is
// append-only: there are no update or delete methods.
type LogRepository interface {
	Create(ctx context.Context, entry *model.CaregivingLog) error
	ListByElderly(ctx context.Context, elderlyID uuid.UUID) ([]model.CaregivingLog, error)
	ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregivingLog, error)
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new caregiving log repository.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *model.CaregivingLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) ListByElderly(ctx context.Context, elderlyID uuid.UUID) ([]model.CaregivingLog, error) {
	var entries []model.CaregivingLog
	if err := r.db.WithContext(ctx).
		Where("elderly_id = ?", elderlyID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *logRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregivingLog, error) {
	var entries []model.CaregivingLog
	if err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
