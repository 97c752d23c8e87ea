package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careconnect/internal/cache"
	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
	"careconnect/internal/repository"
)

const (
	rosterCacheKey = "elderly:roster"
	rosterCacheTTL = 5 * time.Minute
)

// ProfileService handles caregiver and elderly profile operations plus the
// two role dashboards.
type ProfileService interface {
	CreateCaregiverProfile(ctx context.Context, userID uuid.UUID, input CaregiverProfileInput) (*model.CaregiverProfile, error)
	// CaregiverDashboard returns the caller's profile (nil when none exists
	// yet) and the elderly roster.
	CaregiverDashboard(ctx context.Context, userID uuid.UUID) (*model.CaregiverProfile, []model.ElderlyProfile, error)
	CreateElderlyProfile(ctx context.Context, familyID uuid.UUID, input ElderlyProfileInput) (*model.ElderlyProfile, error)
	FamilyDashboard(ctx context.Context, familyID uuid.UUID) ([]model.ElderlyProfile, error)
}

// CaregiverProfileInput carries caregiver profile form fields.
type CaregiverProfileInput struct {
	Name             string
	Phone            string
	Address          string
	DateOfBirth      time.Time
	Gender           string
	EmergencyContact string
}

// ElderlyProfileInput carries elderly profile form fields.
type ElderlyProfileInput struct {
	Name             string
	DateOfBirth      time.Time
	Gender           string
	MedicalCondition string
	Location         string
}

type profileService struct {
	caregiverRepo repository.CaregiverProfileRepository
	elderlyRepo   repository.ElderlyProfileRepository
	cache         *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(caregiverRepo repository.CaregiverProfileRepository, elderlyRepo repository.ElderlyProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{
		caregiverRepo: caregiverRepo,
		elderlyRepo:   elderlyRepo,
		cache:         cache,
	}
}

// CreateCaregiverProfile creates the caller's profile. A second attempt is
// refused; the unique index on user_id backs this check under concurrency.
func (s *profileService) CreateCaregiverProfile(ctx context.Context, userID uuid.UUID, input CaregiverProfileInput) (*model.CaregiverProfile, error) {
	existing, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrProfileExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check profile: %w", err)
	}

	profile := &model.CaregiverProfile{
		UserID:           userID,
		Name:             input.Name,
		Phone:            input.Phone,
		Address:          input.Address,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		EmergencyContact: input.EmergencyContact,
	}
	if err := s.caregiverRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create caregiver profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) CaregiverDashboard(ctx context.Context, userID uuid.UUID) (*model.CaregiverProfile, []model.ElderlyProfile, error) {
	profile, err := s.caregiverRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, nil, fmt.Errorf("find profile: %w", err)
		}
		// no profile yet is a valid state
		profile = nil
	}

	var roster []model.ElderlyProfile
	if s.cache.GetJSON(ctx, rosterCacheKey, &roster) {
		return profile, roster, nil
	}

	roster, err = s.elderlyRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list elderly: %w", err)
	}
	s.cache.SetJSON(ctx, rosterCacheKey, roster, rosterCacheTTL)
	return profile, roster, nil
}

func (s *profileService) CreateElderlyProfile(ctx context.Context, familyID uuid.UUID, input ElderlyProfileInput) (*model.ElderlyProfile, error) {
	profile := &model.ElderlyProfile{
		FamilyMemberID:   familyID,
		Name:             input.Name,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		MedicalCondition: input.MedicalCondition,
		Location:         input.Location,
	}
	if err := s.elderlyRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create elderly profile: %w", err)
	}
	_ = s.cache.Delete(ctx, rosterCacheKey)
	return profile, nil
}

func (s *profileService) FamilyDashboard(ctx context.Context, familyID uuid.UUID) ([]model.ElderlyProfile, error) {
	return s.elderlyRepo.ListByFamily(ctx, familyID)
}
