package models

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// Notification is a one-way message for the shopper, e.g. "Cart cleared".
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ApiResponse is the JSON envelope returned by every storefront endpoint.
type ApiResponse struct {
	Message         string         `json:"message"`
	Data            any            `json:"data,omitempty"`
	Error           bool           `json:"error,omitempty"`
	Meta            *ListMeta      `json:"meta,omitempty"`
	Notifications   []Notification `json:"notifications,omitempty"`
	RequestedEntity string         `json:"requested_entity,omitempty"`
}

// ListMeta describes a filtered product listing.
type ListMeta struct {
	Total         int `json:"total"`
	Count         int `json:"count"`
	ActiveFilters int `json:"active_filters"`
}

// SuccessResponse wraps data for a single entity.
func SuccessResponse(entity, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		RequestedEntity: entity,
	}
}

// ListResponse wraps a product listing with its meta.
func ListResponse(entity, message string, data any, meta *ListMeta) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		RequestedEntity: entity,
	}
}

// ErrorResponse builds a failed response.
func ErrorResponse(entity, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		RequestedEntity: entity,
	}
}

// WithNotifications attaches the notifications raised while serving the request.
func (r ApiResponse) WithNotifications(n []Notification) ApiResponse {
	r.Notifications = n
	return r
}
