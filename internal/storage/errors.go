package storage

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrAdminNotConfigured = errors.New("admin data not configured")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameMismatch   = errors.New("invalid username")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
