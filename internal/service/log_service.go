package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
	"careconnect/internal/repository"
)

// LogService appends to and reads the caregiving audit trail.
type LogService interface {
	AppendLog(ctx context.Context, userID, elderlyID uuid.UUID, task, notes string) (*model.CaregivingLog, error)
	LogsByCaregiver(ctx context.Context, userID uuid.UUID) ([]model.CaregivingLog, error)
	LogsByElderly(ctx context.Context, elderlyID uuid.UUID) ([]model.CaregivingLog, error)
}

type logService struct {
	logRepo       repository.LogRepository
	caregiverRepo repository.CaregiverProfileRepository
	elderlyRepo   repository.ElderlyProfileRepository
}

// NewLogService creates a new caregiving log service.
func NewLogService(logRepo repository.LogRepository, caregiverRepo repository.CaregiverProfileRepository, elderlyRepo repository.ElderlyProfileRepository) LogService {
	return &logService{
		logRepo:       logRepo,
		caregiverRepo: caregiverRepo,
		elderlyRepo:   elderlyRepo,
	}
}

// AppendLog writes an audit entry. The caller must have a caregiver profile
// and the elderly profile must exist; entries are immutable once written.
func (s *logService) AppendLog(ctx context.Context, userID, elderlyID uuid.UUID, task, notes string) (*model.CaregivingLog, error) {
	profile, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	if _, err := s.elderlyRepo.FindByID(ctx, elderlyID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrElderlyNotFound
		}
		return nil, fmt.Errorf("resolve elderly: %w", err)
	}

	entry := &model.CaregivingLog{
		CaregiverID: profile.ID,
		ElderlyID:   elderlyID,
		Task:        task,
		Notes:       notes,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("append log: %w", err)
	}
	return entry, nil
}

func (s *logService) LogsByCaregiver(ctx context.Context, userID uuid.UUID) ([]model.CaregivingLog, error) {
	profile, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return s.logRepo.ListByCaregiver(ctx, profile.ID)
}

func (s *logService) LogsByElderly(ctx context.Context, elderlyID uuid.UUID) ([]model.CaregivingLog, error) {
	return s.logRepo.ListByElderly(ctx, elderlyID)
}
