package response

import (
	"cafe/shared/constant"
	"cafe/shared/failure"
	"cafe/shared/logger"
	"net/http"

	"github.com/goccy/go-json"
)

// Status is the body of the health probe.
type Status struct {
	Status string `json:"status"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Response is the {"response": {...}} envelope used for successful writes.
type Response struct {
	Response map[string]string `json:"response"`
}

// Result is the {"res": {...}} envelope used by report-close, including its 403.
type Result struct {
	Res map[string]string `json:"res"`
}

// Error is the {"error": {"<status text>": "<message>"}} envelope.
type Error struct {
	Error map[string]string `json:"error"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends payload as the whole response body.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

func WithResponse(writer http.ResponseWriter, code int, key, message string) {
	response(writer, code, Response{Response: map[string]string{key: message}})
}

func WithResult(writer http.ResponseWriter, code int, key, message string) {
	response(writer, code, Result{Res: map[string]string{key: message}})
}

// WithError renders err with the status carried by a failure.Failure, 500 otherwise.
// Forbidden goes out under "res", every other status under "error" keyed by its status text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	msg := failure.GetMessage(err)

	if code == http.StatusForbidden {
		WithResult(writer, code, "error", msg)

		return
	}

	response(writer, code, Error{Error: map[string]string{http.StatusText(code): msg}})
}

// WithStatus sends the health probe body.
func WithStatus(writer http.ResponseWriter, code int, status string) {
	response(writer, code, Status{Status: status})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithHTML sends an already rendered page.
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
