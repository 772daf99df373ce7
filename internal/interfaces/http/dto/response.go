package dto

// Response is the uniform API envelope. The transport layer always answers
// HTTP 200; the business status lives in the Status field. Clients switch
// on Status, not on the HTTP code.
type Response struct {
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ContextStatusKey is the gin context key under which envelope writers
// record the business status. The transport code is always 200, so the
// access log and tracing middleware read this key to tell success from
// failure.
const ContextStatusKey = "envelope_status"

// Pagination carries paging metadata alongside list data
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  StatusOK,
		Message: message,
		Data:    data,
	}
}

// NewPaginatedResponse creates a success envelope with paging metadata
func NewPaginatedResponse(message string, data interface{}, p *Pagination) Response {
	return Response{
		Status:     StatusOK,
		Message:    message,
		Data:       data,
		Pagination: p,
	}
}

// NewErrorResponse creates an error envelope with an embedded business status
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
	}
}

// ListRequest represents common list/pagination query parameters
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
