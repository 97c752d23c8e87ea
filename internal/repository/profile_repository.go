package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careconnect/internal/model"
)

// CaregiverProfileRepository defines caregiver profile persistence operations.
type CaregiverProfileRepository interface {
	Create(ctx context.Context, profile *model.CaregiverProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.CaregiverProfile, error)
}

type caregiverProfileRepository struct {
	db *gorm.DB
}

// NewCaregiverProfileRepository creates a new caregiver profile repository.
func NewCaregiverProfileRepository(db *gorm.DB) CaregiverProfileRepository {
	return &caregiverProfileRepository{db: db}
}

func (r *caregiverProfileRepository) Create(ctx context.Context, profile *model.CaregiverProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *caregiverProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverProfile, error) {
	var profile model.CaregiverProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *caregiverProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.CaregiverProfile, error) {
	var profile model.CaregiverProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ElderlyProfileRepository defines elderly profile persistence operations.
type ElderlyProfileRepository interface {
	Create(ctx context.Context, profile *model.ElderlyProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ElderlyProfile, error)
	// FindOwned resolves an elderly profile only when it belongs to the given
	// family member; a foreign id behaves exactly like an unknown one.
	FindOwned(ctx context.Context, id, familyID uuid.UUID) (*model.ElderlyProfile, error)
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.ElderlyProfile, error)
	ListAll(ctx context.Context) ([]model.ElderlyProfile, error)
}

type elderlyProfileRepository struct {
	db *gorm.DB
}

// NewElderlyProfileRepository creates a new elderly profile repository.
func NewElderlyProfileRepository(db *gorm.DB) ElderlyProfileRepository {
	return &elderlyProfileRepository{db: db}
}

func (r *elderlyProfileRepository) Create(ctx context.Context, profile *model.ElderlyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *elderlyProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ElderlyProfile, error) {
	var profile model.ElderlyProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *elderlyProfileRepository) FindOwned(ctx context.Context, id, familyID uuid.UUID) (*model.ElderlyProfile, error) {
	var profile model.ElderlyProfile
	if err := r.db.WithContext(ctx).
		Where("id = ? AND family_member_id = ?", id, familyID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *elderlyProfileRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.ElderlyProfile, error) {
	var profiles []model.ElderlyProfile
	if err := r.db.WithContext(ctx).Where("family_member_id = ?", familyID).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *elderlyProfileRepository) ListAll(ctx context.Context) ([]model.ElderlyProfile, error) {
	var profiles []model.ElderlyProfile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
