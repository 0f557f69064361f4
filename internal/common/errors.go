package common

import "errors"

var (

	// validation errors
	ErrValidation    = errors.New("required field is empty")
	ErrInvalidStatus = errors.New("invalid status")

	// auth-specific errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrNotAuthenticated   = errors.New("login required")
	ErrNotAuthorized      = errors.New("admin access only")

	// repository-specific errors
	ErrNotFound = errors.New("not found")
)
