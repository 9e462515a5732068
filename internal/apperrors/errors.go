// Package apperrors provides the error taxonomy shared by the repositories,
// services, and CLI. All expected failures are AppError sentinels so callers
// can branch with errors.Is without string matching.
package apperrors

// AppError is a structured application error with a stable code, a
// human-readable message, and an optional internal cause.
type AppError struct {
	Code     string
	Message  string
	Internal error
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal cause for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code, so wrapped values still satisfy
// errors.Is(err, sentinel).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{Code: sentinel.Code, Message: sentinel.Message, Internal: internal}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{Code: sentinel.Code, Message: message, Internal: sentinel.Internal}
}

// Authentication and authorization.
var (
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid username or password"}
	ErrUsernameTaken      = &AppError{Code: "USERNAME_TAKEN", Message: "username already exists"}
	ErrBadAdminSecret     = &AppError{Code: "BAD_ADMIN_SECRET", Message: "invalid admin secret key"}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "admin role required"}
	ErrSessionInvalid     = &AppError{Code: "SESSION_INVALID", Message: "session token is missing or invalid"}
)

// Catalog.
var (
	ErrAssetNotFound = &AppError{Code: "ASSET_NOT_FOUND", Message: "asset not found"}
	ErrValidation    = &AppError{Code: "INVALID_INPUT", Message: "invalid input"}
)
