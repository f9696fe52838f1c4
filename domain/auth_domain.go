package domain

import "errors"

var (
	MessageSuccessRegisterStaff = "staff registered successfully"
	MessageSuccessLogin         = "login successful"

	MessageFailedRegisterStaff = "failed to register staff"
	MessageFailedLogin         = "failed to login"

	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff already exists")
	ErrWrongCredentials   = errors.New("wrong email or password")
)

type (
	RegisterStaffRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
)
