// Package common defines shared constants and sentinel errors used across
// the layers of miniblog. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	//
	// ErrNotFound doubles as the "absent" result on lookups by key:
	// repositories return it when no row matches, and services decide
	// whether absence is a normal outcome or a failure for the operation
	// at hand.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Validation / business-rule errors.
	ErrValidation = errors.New("validation error")

	// Authentication errors. ErrInvalidCredentials deliberately covers both
	// unknown email and wrong password so the caller cannot tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
	ErrPermissionDenied   = errors.New("permission denied")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
