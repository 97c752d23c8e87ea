package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careconnect/internal/model"
)

// RequestRepository defines caregiver request persistence operations.
type RequestRepository interface {
	Create(ctx context.Context, request *model.CaregiverRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error
	ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverRequest, error)
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.CaregiverRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *model.CaregiverRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverRequest, error) {
	var request model.CaregiverRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.CaregiverRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *requestRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverRequest, error) {
	var requests []model.CaregiverRequest
	if err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Preload("Elderly").
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.CaregiverRequest, error) {
	var requests []model.CaregiverRequest
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Preload("Elderly").
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
