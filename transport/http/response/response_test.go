package response_test

import (
	"cafe/shared/failure"
	"cafe/transport/http/response"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found",
			err:          failure.NotFound("Sorry, we don't have a cafe at that location."),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":{"Not Found":"Sorry, we don't have a cafe at that location."}}`,
		},
		{
			name:         "forbidden uses res envelope",
			err:          failure.ForbiddenError,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"res":{"error":"Sorry, that's not allowed. Make sure you have the correct api_key."}}`,
		},
		{
			name:         "bad request",
			err:          failure.BadRequestFromString("name is required"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":{"Bad Request":"name is required"}}`,
		},
		{
			name:         "wrapped conflict",
			err:          fmt.Errorf("create: %w", failure.Conflict("taken")),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":{"Conflict":"taken"}}`,
		},
		{
			name:         "unknown error hides details",
			err:          errors.New("no such table: cafes"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":{"Internal Server Error":"Internal Server Error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name         string
		write        func(w http.ResponseWriter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "response",
			write: func(w http.ResponseWriter) {
				response.WithResponse(w, http.StatusOK, "success", "Successfully added the new cafe.")
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"response":{"success":"Successfully added the new cafe."}}`,
		},
		{
			name: "result",
			write: func(w http.ResponseWriter) {
				response.WithResult(w, http.StatusOK, "Success", "Successfully deleted the Cafe with ID-3")
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"res":{"Success":"Successfully deleted the Cafe with ID-3"}}`,
		},
		{
			name:         "raw json",
			write:        func(w http.ResponseWriter) { response.WithJSON(w, http.StatusOK, map[string]int{"1": 1}) },
			expectedCode: http.StatusOK,
			expectedBody: `{"1":1}`,
		},
		{
			name:         "status",
			write:        func(w http.ResponseWriter) { response.WithStatus(w, http.StatusOK, "ok") },
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"ok"}`,
		},
		{
			name:         "rate limited",
			write:        response.WithRequestLimitExceeded,
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"message":"REQUEST LIMIT EXCEEDED"}`,
		},
		{
			name:         "shutting down",
			write:        response.WithPreparingShutdown,
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
		{
			name:         "unhealthy",
			write:        response.WithUnhealthy,
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"SERVER UNHEALTHY"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestWithHTML(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithHTML(rec, http.StatusOK, []byte("<h1>Cafes</h1>"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>Cafes</h1>", rec.Body.String())
}
