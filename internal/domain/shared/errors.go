package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so wrapped copies with a
// custom message still match the sentinel values below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error with a different message
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message}
}

// Wrap returns a copy of the error with a different message that unwraps to cause
func (e *DomainError) Wrap(message string, cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: message, cause: cause}
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden     = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	// ErrEntityInUse is returned when a record is still referenced by assets.
	ErrEntityInUse = NewDomainError("ENTITY_IN_USE", "Resource is still referenced by assets")
	// ErrDeleteFailed wraps unexpected persistence failures on delete.
	ErrDeleteFailed = NewDomainError("DELETE_FAILED", "Failed to delete resource")
	// ErrUpdateFailed wraps failures raised inside an update transaction.
	ErrUpdateFailed = NewDomainError("UPDATE_FAILED", "Failed to update resource")
)
