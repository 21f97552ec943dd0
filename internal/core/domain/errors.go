package domain

import "errors"

var (
	// ErrValidation marks input that is structurally invalid for the
	// requested operation.
	ErrValidation = errors.New("validation failed")
	// ErrEntityNotFound is returned when a lookup, update or delete target
	// does not exist.
	ErrEntityNotFound = errors.New("not found")
	// ErrAuthRequired is returned when a caller identity is needed but
	// absent.
	ErrAuthRequired = errors.New("user authentication required")
	// ErrUnknownTool is returned for tool names absent from the catalog.
	ErrUnknownTool = errors.New("unknown tool")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
