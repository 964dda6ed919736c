package custom_errors

import "errors"

var (
	// Entity lookup.
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")

	// Access control.
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not allowed for this user")

	// Form validation.
	ErrPostValidation    = errors.New("post validation failed")
	ErrCommentValidation = errors.New("comment validation failed")
	ErrUserValidation    = errors.New("user validation failed")

	// Generic query endpoint.
	ErrInvalidQueryCommand = errors.New("unknown query command")
	ErrInvalidQueryField   = errors.New("unknown query field")
	ErrInvalidQueryValue   = errors.New("malformed query value")

	// Auth workflow.
	ErrUsernameExists     = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")

	// Cache.
	ErrCacheMiss = errors.New("cache miss")

	// Store failures.
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrNoUpdateRows  = errors.New("no fields to update")
)
