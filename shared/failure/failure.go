package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that already knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ForbiddenError answers a report-close carrying the wrong api_key.
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "Sorry, that's not allowed. Make sure you have the correct api_key."}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// BadRequest keeps the message of err. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a write that collides with an existing row, e.g. a taken cafe name.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// MethodNotAllowed uses the status text as its message.
func MethodNotAllowed() error {
	return newFailure(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the message carried by err. Anything that is not a Failure is reduced
// to the status text so driver errors never reach the client.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}
