package response

import "fbr-invoice-backend/pkg/pagination"

// Response is the success envelope. Failures are rendered by apperr.Middleware.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Warning string      `json:"warning,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps data in the standard envelope.
func Success(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

// Message returns a success envelope carrying a human-readable message and optional data.
func Message(msg string, data interface{}) Response {
	return Response{Status: "success", Message: msg, Data: data}
}

// Paginated nests items under key next to the pagination block.
func Paginated(key string, items interface{}, meta pagination.Meta) Response {
	return Success(map[string]interface{}{
		key:          items,
		"pagination": meta,
	})
}
