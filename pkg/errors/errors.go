package errors

import "fmt"

// HTTPError is a delivery-layer error carrying an HTTP status code.
// UseCase errors are translated into HTTPError by each handler's mapError.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
