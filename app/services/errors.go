package services

import "errors"

// Error kinds surfaced to handlers. Wrapped with detail via fmt.Errorf and
// matched with errors.Is.
var (
	// ErrValidation covers bad user input: missing or negative numbers,
	// blank rejection reasons, bad files.
	ErrValidation = errors.New("validation failed")
	// ErrPermission means the caller's role does not allow the operation.
	ErrPermission = errors.New("insufficient permissions")
	// ErrInvalidState means a review was attempted on a claim that is no
	// longer pending.
	ErrInvalidState = errors.New("claim already reviewed")
	// ErrNotFound means the claim id does not exist.
	ErrNotFound = errors.New("claim not found")
)
