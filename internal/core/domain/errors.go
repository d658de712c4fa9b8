package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserDisabled       = errors.New("user disabled")
	ErrForbidden          = errors.New("access forbidden")

	ErrPatientNotFound = errors.New("patient not found")
	ErrEmailExists     = errors.New("email already exists")
	ErrEmptyUpdate     = errors.New("no fields to update")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
