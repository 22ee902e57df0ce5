// Package apierror provides the standardized error surface of the API.
// All 4xx/5xx responses go through this package so that bodies stay
// consistent and internal details (SQL, stack traces) never leak.
package apierror

import "net/http"

// Error is the canonical API error: an HTTP status, a human-readable
// Spanish message, and optional extra fields merged into the JSON body
// (e.g. stock_disponible on a stock conflict).
type Error struct {
	Status  int
	Message string
	Extra   map[string]interface{}
}

func (e *Error) Error() string { return e.Message }

// Body builds the JSON payload: {"message": ...} plus any extra fields.
func (e *Error) Body() map[string]interface{} {
	body := map[string]interface{}{"message": e.Message}
	for k, v := range e.Extra {
		body[k] = v
	}
	return body
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// ConflictData builds a 409 with contextual fields in the body.
func ConflictData(msg string, extra map[string]interface{}) *Error {
	return &Error{Status: http.StatusConflict, Message: msg, Extra: extra}
}
