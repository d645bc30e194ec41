package errs

import "net/http"

// HTTPError is the error type handlers and services return when they
// already know the HTTP status a failure maps to. It satisfies the
// error interface and is unwrapped by the global error handler.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewNotFoundError creates the 404 error used for every missing-entity
// case. The message is fixed and never includes the underlying cause.
func NewNotFoundError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: "Not found",
	}
}

// NewGatewayError wraps a persistence failure as a 500. The raw error
// message is exposed to the client; that is existing API behavior
// clients depend on, not an accident.
func NewGatewayError(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// ErrorResponse is the envelope for 5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for 404 responses and for the delete
// success body.
type MessageResponse struct {
	Message string `json:"message"`
}
