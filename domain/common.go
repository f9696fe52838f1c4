package domain

import (
	"errors"
	"os"
)

const (
	RoleStaff = "staff"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")

	// ErrStorageContention is surfaced only after the bounded retry policy
	// on lock contention has been exhausted.
	ErrStorageContention = errors.New("storage contention: retries exhausted")
)
