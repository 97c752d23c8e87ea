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

// RequestService handles the family-to-caregiver request workflow. Requests
// start pending; the targeted caregiver accepts or declines, both terminal.
type RequestService interface {
	CreateRequest(ctx context.Context, familyID, caregiverProfileID, elderlyID uuid.UUID) (*model.CaregiverRequest, error)
	ListForCaregiver(ctx context.Context, userID uuid.UUID) ([]model.CaregiverRequest, error)
	ListForFamily(ctx context.Context, familyID uuid.UUID) ([]model.CaregiverRequest, error)
	Resolve(ctx context.Context, userID, requestID uuid.UUID, status model.RequestStatus) (*model.CaregiverRequest, error)
}

type requestService struct {
	requestRepo   repository.RequestRepository
	caregiverRepo repository.CaregiverProfileRepository
	elderlyRepo   repository.ElderlyProfileRepository
}

// NewRequestService creates a new request service.
func NewRequestService(requestRepo repository.RequestRepository, caregiverRepo repository.CaregiverProfileRepository, elderlyRepo repository.ElderlyProfileRepository) RequestService {
	return &requestService{
		requestRepo:   requestRepo,
		caregiverRepo: caregiverRepo,
		elderlyRepo:   elderlyRepo,
	}
}

// CreateRequest files a pending request for an elderly profile the caller
// owns, targeting an existing caregiver profile.
func (s *requestService) CreateRequest(ctx context.Context, familyID, caregiverProfileID, elderlyID uuid.UUID) (*model.CaregiverRequest, error) {
	if _, err := s.elderlyRepo.FindOwned(ctx, elderlyID, familyID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrElderlyNotFound
		}
		return nil, fmt.Errorf("resolve elderly: %w", err)
	}
	if _, err := s.caregiverRepo.FindByID(ctx, caregiverProfileID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve caregiver: %w", err)
	}

	request := &model.CaregiverRequest{
		FamilyID:    familyID,
		CaregiverID: caregiverProfileID,
		ElderlyID:   elderlyID,
		Status:      model.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return request, nil
}

func (s *requestService) ListForCaregiver(ctx context.Context, userID uuid.UUID) ([]model.CaregiverRequest, error) {
	profile, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return s.requestRepo.ListByCaregiver(ctx, profile.ID)
}

func (s *requestService) ListForFamily(ctx context.Context, familyID uuid.UUID) ([]model.CaregiverRequest, error) {
	return s.requestRepo.ListByFamily(ctx, familyID)
}

// Resolve moves a pending request to accepted or declined. Only the targeted
// caregiver may resolve it, and a resolved request stays resolved.
func (s *requestService) Resolve(ctx context.Context, userID, requestID uuid.UUID, status model.RequestStatus) (*model.CaregiverRequest, error) {
	if status != model.RequestStatusAccepted && status != model.RequestStatusDeclined {
		return nil, apperrors.ErrRequestResolved
	}

	profile, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	if request.CaregiverID != profile.ID {
		return nil, apperrors.ErrPermissionDenied
	}
	if request.Status != model.RequestStatusPending {
		return nil, apperrors.ErrRequestResolved
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	request.Status = status
	return request, nil
}
