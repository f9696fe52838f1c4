package auth

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AuthService interface {
		RegisterStaff(ctx context.Context, req domain.RegisterStaffRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	authService struct {
		authRepository AuthRepository
		jwtService     JWTService
	}
)

func NewAuthService(authRepository AuthRepository, jwtService JWTService) AuthService {
	return &authService{
		authRepository: authRepository,
		jwtService:     jwtService,
	}
}

func (s *authService) RegisterStaff(ctx context.Context, req domain.RegisterStaffRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.authRepository.GetStaffByEmail(ctx, email); err == nil {
		return domain.ErrStaffAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := &entities.Staff{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}

	return s.authRepository.AddStaff(ctx, staff)
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	staff, err := s.authRepository.GetStaffByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateTokenStaff(staff.ID.String(), staff.Role)

	return domain.LoginResponse{
		Token: token,
		Name:  staff.Name,
		Role:  staff.Role,
	}, nil
}
