package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a VALIDATION error with a field-specific message
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: "VALIDATION", Message: message}
}

// NewConflictError creates a CONFLICT error ("already exists" family)
func NewConflictError(message string) *DomainError {
	return &DomainError{Code: "CONFLICT", Message: message}
}

// NewNotFoundError creates a NOT_FOUND error
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: "NOT_FOUND", Message: message}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("CONFLICT", "Resource already exists")
	ErrInvalidInput  = NewDomainError("VALIDATION", "Invalid input provided")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrPersistence   = NewDomainError("INTERNAL", "Database error")
)
