package services

import (
	"errors"

	"kampala_finance_backend/internal/repositories"
)

// --- Custom Service Errors ---
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation error")
	ErrMalformedInput     = errors.New("input is not a valid document")
	ErrInvalidBackup      = errors.New("backup is missing users, transactions or settings")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionRevoked     = errors.New("session has been logged out")
)

// Storage errors surfaced unchanged by the store.
var (
	ErrDocumentAbsent    = repositories.ErrDocumentAbsent
	ErrMalformedDocument = repositories.ErrMalformedDocument
	ErrUnsupportedSchema = repositories.ErrUnsupportedSchema
	ErrConflict          = repositories.ErrConflict
)
