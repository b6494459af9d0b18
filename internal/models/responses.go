package models

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"-"`
}

func (r *APIResponse) MarshalJSON() ([]byte, error) {
	type Alias APIResponse
	return json.Marshal(&struct {
		*Alias
		Timestamp string `json:"timestamp"`
	}{
		Alias:     (*Alias)(r),
		Timestamp: r.Timestamp.Format(time.RFC3339),
	})
}

func NewSuccessResponse(message string, data interface{}) *APIResponse {
	return &APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewFailResponse is used for client errors (4xx).
func NewFailResponse(message string, data interface{}) *APIResponse {
	return &APIResponse{
		Status:    StatusFail,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse is used for server errors (5xx).
func NewErrorResponse(message string) *APIResponse {
	return &APIResponse{
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatusResponse picks fail or error from the HTTP status code.
func NewStatusResponse(statusCode int, message string, data interface{}) *APIResponse {
	if statusCode >= http.StatusInternalServerError {
		resp := NewErrorResponse(message)
		resp.Data = data
		return resp
	}
	return NewFailResponse(message, data)
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

type ContactData struct {
	Contact *Contact `json:"contact"`
}

type ErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorData struct {
	Errors []ErrorItem `json:"errors"`
}
