package usecase

import "errors"

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrUserExists       = errors.New("User already exists")
	ErrInvalidStatus    = errors.New("Invalid availability status")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("durable store unavailable")
)
