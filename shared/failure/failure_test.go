package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"reception/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "amount is required",
	}

	if f.Error() != "amount is required" {
		t.Errorf("expected error message to be 'amount is required', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("invalid booking id"),
			code:    http.StatusBadRequest,
			message: "invalid booking id",
		},
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("malformed body")),
			code:    http.StatusBadRequest,
			message: "malformed body",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("encode failed")),
			code:    http.StatusInternalServerError,
			message: "encode failed",
		},
		{
			name:    "not found",
			err:     failure.NotFound("payment flow not found"),
			code:    http.StatusNotFound,
			message: "payment flow not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("already submitting"),
			code:    http.StatusConflict,
			message: "already submitting",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("Access denied"),
			code:    http.StatusForbidden,
			message: "Access denied",
		},
		{
			name:    "upstream",
			err:     failure.Upstream(errors.New("dial tcp: connection refused")),
			code:    http.StatusBadGateway,
			message: "dial tcp: connection refused",
		},
		{
			name:    "unprocessable",
			err:     failure.Unprocessable("Booking already checked out"),
			code:    http.StatusUnprocessableEntity,
			message: "Booking already checked out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
	if failure.Upstream(nil) != nil {
		t.Error("expected Upstream(nil) to be nil")
	}
}

func TestFieldError(t *testing.T) {
	err := fmt.Errorf("submit: %w", failure.FieldError("amount", "amount exceeds remaining balance"))

	if got := failure.GetCode(err); got != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, got)
	}
	if got := failure.GetField(err); got != "amount" {
		t.Errorf("expected field amount, got %q", got)
	}
	if got := failure.GetField(errors.New("plain")); got != "" {
		t.Errorf("expected empty field, got %q", got)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("checkout: %w", failure.Unprocessable("not allowed")),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "predefined submit guard",
			input:    failure.SubmitInProgress,
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
