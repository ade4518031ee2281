package adminclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed operation so callers can pick a recovery:
// re-authenticate, reload the collection, fix the input, or retry.
type ErrorKind int

const (
	ErrorNetwork ErrorKind = iota
	ErrorUnauthorized
	ErrorNotFound
	ErrorValidation
	ErrorUploadRejected
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorUnauthorized:
		return "unauthorized"
	case ErrorNotFound:
		return "not_found"
	case ErrorValidation:
		return "validation"
	case ErrorUploadRejected:
		return "upload_rejected"
	default:
		return "network"
	}
}

type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError returns the *Error inside err, or wraps an unknown error as a
// network failure so callers always see the kind taxonomy.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: ErrorNetwork, Message: err.Error()}
}

func networkError(err error) *Error {
	return &Error{Kind: ErrorNetwork, Message: err.Error()}
}

func validationError(message string) *Error {
	return &Error{Kind: ErrorValidation, Message: message}
}

// classifyStatus maps a non-2xx response to an Error, preferring the
// server's own message text when the body carries one.
func classifyStatus(status int, body []byte) *Error {
	message := serverMessage(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if message == "" {
			message = "authentication required"
		}
		return &Error{Kind: ErrorUnauthorized, Status: status, Message: message}
	case status == http.StatusNotFound:
		if message == "" {
			message = "record not found"
		}
		return &Error{Kind: ErrorNotFound, Status: status, Message: message}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid request"
		}
		return &Error{Kind: ErrorValidation, Status: status, Message: message}
	default:
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", status)
		}
		return &Error{Kind: ErrorNetwork, Status: status, Message: message}
	}
}

func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
