package auth

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Staff{}))

	return NewAuthService(NewAuthRepository(db), NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	err := service.RegisterStaff(ctx, domain.RegisterStaffRequest{
		Name:     "Pedro Rojas",
		Email:    "Pedro@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Login is case insensitive on email.
	res, err := service.Login(ctx, domain.LoginRequest{
		Email:    "pedro@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Pedro Rojas", res.Name)
	assert.Equal(t, domain.RoleStaff, res.Role)
}

func TestLogin_WrongCredentials(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.RegisterStaff(ctx, domain.RegisterStaffRequest{
		Name:     "Pedro Rojas",
		Email:    "pedro@example.com",
		Password: "supersecret",
	}))

	_, err := service.Login(ctx, domain.LoginRequest{
		Email:    "pedro@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestRegisterStaff_DuplicateEmail(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.RegisterStaff(ctx, domain.RegisterStaffRequest{
		Name:     "Pedro Rojas",
		Email:    "pedro@example.com",
		Password: "supersecret",
	}))

	err := service.RegisterStaff(ctx, domain.RegisterStaffRequest{
		Name:     "Pedro Again",
		Email:    "PEDRO@example.com",
		Password: "othersecret",
	})
	assert.ErrorIs(t, err, domain.ErrStaffAlreadyExists)
}

func TestJWT_RoundTrip(t *testing.T) {
	jwtService := NewJWTService()

	token := jwtService.GenerateTokenStaff("staff-1", domain.RoleStaff)
	require.NotEmpty(t, token)

	staffID, role, err := jwtService.GetStaffIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", staffID)
	assert.Equal(t, domain.RoleStaff, role)

	_, _, err = jwtService.GetStaffIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
