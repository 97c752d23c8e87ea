package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careconnect/internal/auth"
	apperrors "careconnect/internal/errors"
	"careconnect/internal/model"
	"careconnect/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login and token lifecycle.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

// SignupInput carries the validated signup form fields.
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            model.Role
	AdminCode       string
}

// LoginResult bundles the issued tokens with the role-based redirect hint.
type LoginResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	Redirect     string      `json:"redirect"`
	User         *model.User `json:"user"`
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	adminCodes []string
}

// NewAuthService creates a new authentication service. adminCodes is the
// configured allow-list gating the admin role at signup.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, adminCodes []string) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		adminCodes: adminCodes,
	}
}

// Signup validates the form and creates the identity. All preconditions run
// before the insert, so a rejected admin code never leaves a transient user
// behind.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	if !input.Role.Valid() {
		return nil, &PasswordPolicyError{Message: "unknown role"}
	}
	if input.Password != input.PasswordConfirm {
		return nil, &PasswordPolicyError{Message: "passwords do not match"}
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if input.Role == model.RoleAdmin && !s.validAdminCode(input.AdminCode) {
		return nil, apperrors.ErrInvalidAdminCode
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) validAdminCode(code string) bool {
	for _, c := range s.adminCodes {
		if code == c {
			return true
		}
	}
	return false
}

// Login authenticates by email and password, escalates admin flags lazily on
// first login, and issues access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == model.RoleAdmin && (!user.IsStaff || !user.IsSuperuser) {
		user.IsStaff = true
		user.IsSuperuser = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("escalate admin flags: %w", err)
		}
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID.String(), user.Email, user.Role, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Redirect:     RedirectForRole(user.Role),
		User:         user,
	}, nil
}

// RedirectForRole maps a role to its post-login dashboard path.
func RedirectForRole(role model.Role) string {
	switch role {
	case model.RoleCaregiver:
		return "/api/caregiver/dashboard"
	case model.RoleFamily:
		return "/api/family/dashboard"
	case model.RoleAdmin:
		return "/api/admin/schedules"
	}
	return "/api/auth/login"
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	storedUserID, storedEmail, storedRole, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if storedUserID != claims.UserID || storedEmail != claims.Email || storedRole != claims.Role {
		return "", apperrors.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	accessToken, err := s.jwtService.GenerateAccessToken(userID, claims.Email, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
