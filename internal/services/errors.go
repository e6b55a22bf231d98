package services

import "errors"

// Sentinel errors shared by every service. Handlers match them with
// errors.Is and translate them to HTTP status codes; services never
// touch HTTP themselves.
var (
	ErrNotFound     = errors.New("not found")
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrTransaction  = errors.New("transaction failed")
)
