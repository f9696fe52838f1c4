package auth

import (
	"Resto-Manager/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AuthRepository interface {
		AddStaff(ctx context.Context, staff *entities.Staff) error
		GetStaffByEmail(ctx context.Context, email string) (*entities.Staff, error)
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) AddStaff(ctx context.Context, staff *entities.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *authRepository) GetStaffByEmail(ctx context.Context, email string) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}
