package dto

// Business status codes embedded in the envelope. They mirror HTTP
// semantics but travel in the body; the wire status is always 200.
const (
	StatusOK           = 200
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409
	StatusInternal     = 500
)

// domainCodeStatus maps DomainError codes to business statuses
var domainCodeStatus = map[string]int{
	"VALIDATION":   StatusBadRequest,
	"UNAUTHORIZED": StatusUnauthorized,
	"FORBIDDEN":    StatusForbidden,
	"NOT_FOUND":    StatusNotFound,
	"CONFLICT":     StatusConflict,
	"INTERNAL":     StatusInternal,
}

// StatusForCode returns the business status for a DomainError code,
// defaulting to 500 for unknown codes
func StatusForCode(code string) int {
	if status, ok := domainCodeStatus[code]; ok {
		return status
	}
	return StatusInternal
}
