package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"careconnect/internal/model"
	"careconnect/internal/strategy"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, role model.Role, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, model.Role, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Get(2).(model.Role), args.Error(3)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockCaregiverProfileRepository mocks repository.CaregiverProfileRepository.
type MockCaregiverProfileRepository struct {
	mock.Mock
}

func (m *MockCaregiverProfileRepository) Create(ctx context.Context, profile *model.CaregiverProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCaregiverProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.CaregiverProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaregiverProfile), args.Error(1)
}

// MockElderlyProfileRepository mocks repository.ElderlyProfileRepository.
type MockElderlyProfileRepository struct {
	mock.Mock
}

func (m *MockElderlyProfileRepository) Create(ctx context.Context, profile *model.ElderlyProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockElderlyProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ElderlyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ElderlyProfile), args.Error(1)
}

func (m *MockElderlyProfileRepository) FindOwned(ctx context.Context, id, familyID uuid.UUID) (*model.ElderlyProfile, error) {
	args := m.Called(ctx, id, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ElderlyProfile), args.Error(1)
}

func (m *MockElderlyProfileRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.ElderlyProfile, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ElderlyProfile), args.Error(1)
}

func (m *MockElderlyProfileRepository) ListAll(ctx context.Context) ([]model.ElderlyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ElderlyProfile), args.Error(1)
}

// MockScheduleRepository mocks repository.ScheduleRepository.
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) List(ctx context.Context, st strategy.ScheduleStrategy) ([]model.Schedule, error) {
	args := m.Called(ctx, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Schedule, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) UpdateRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

// MockAssignmentRepository mocks repository.AssignmentRepository.
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *model.CaregiverAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Exists(ctx context.Context, scheduleID, caregiverID uuid.UUID) (bool, error) {
	args := m.Called(ctx, scheduleID, caregiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverAssignment, error) {
	args := m.Called(ctx, caregiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaregiverAssignment), args.Error(1)
}

// MockRequestRepository mocks repository.RequestRepository.
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, request *model.CaregiverRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CaregiverRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaregiverRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRequestRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregiverRequest, error) {
	args := m.Called(ctx, caregiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaregiverRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.CaregiverRequest, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaregiverRequest), args.Error(1)
}

// MockLogRepository mocks repository.LogRepository.
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Create(ctx context.Context, entry *model.CaregivingLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) ListByElderly(ctx context.Context, elderlyID uuid.UUID) ([]model.CaregivingLog, error) {
	args := m.Called(ctx, elderlyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaregivingLog), args.Error(1)
}

func (m *MockLogRepository) ListByCaregiver(ctx context.Context, caregiverID uuid.UUID) ([]model.CaregivingLog, error) {
	args := m.Called(ctx, caregiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaregivingLog), args.Error(1)
}

// MockMailer mocks mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
