package entity

import "errors"

var (
	// common errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrWrongPassword  = errors.New("incorrect password")
	ErrBlocked        = errors.New("account is blocked")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrReservedEmail  = errors.New("email cannot be used")
	ErrInvalidSession = errors.New("invalid or expired session")

	// storage-specific errors
	ErrStorageCorrupt = errors.New("stored data is corrupt")
)
