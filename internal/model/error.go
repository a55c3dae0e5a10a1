package model

// ErrorResponse is the JSON body for every error the service emits. The
// correlation id lets a client report a failing request unambiguously.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}
