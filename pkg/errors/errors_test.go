package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{
			name:       "not found",
			err:        NotFound("Interview"),
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not found with id",
			err:        NotFoundWithID("Interview", 42),
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "validation",
			err:        Validation("Invalid input", nil),
			wantCode:   CodeValidation,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid input",
			err:        InvalidInput("Invalid id"),
			wantCode:   CodeInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid datetime",
			err:        InvalidDateTime("Invalid date/time format"),
			wantCode:   CodeInvalidDateTime,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid interval",
			err:        InvalidInterval("Duration must be positive"),
			wantCode:   CodeInvalidInterval,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict",
			err:        Conflict("Time slot already booked"),
			wantCode:   CodeConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "internal",
			err:        Internal("Something broke", errors.New("cause")),
			wantCode:   CodeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Interview", 7)
	if err.Details["resource"] != "Interview" {
		t.Errorf("expected resource detail, got %v", err.Details["resource"])
	}
	if err.Details["id"] != int64(7) {
		t.Errorf("expected id detail 7, got %v", err.Details["id"])
	}
}

func TestError_Message(t *testing.T) {
	err := Conflict("Interview 3 is already cancelled")
	want := "CONFLICT: Interview 3 is already cancelled"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestError_WithCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("Failed to save", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be matchable with errors.Is")
	}
	want := "INTERNAL_ERROR: Failed to save (caused by: disk full)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "Failed to publish event", http.StatusInternalServerError)

	if err.Code != CodeInternal || err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("unexpected code/status: %s/%d", err.Code, err.StatusCode())
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be preserved")
	}
}

func TestWithDetails(t *testing.T) {
	err := InvalidDateTime("Invalid date/time format").WithDetails(map[string]any{
		"date": "2024-02-30",
	})
	if err.Details["date"] != "2024-02-30" {
		t.Errorf("expected date detail, got %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Interview")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected same AppError back")
	}

	plain := fmt.Errorf("plain error")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected plain error wrapped as %s, got %s", CodeInternal, got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("expected original error preserved as cause")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Conflict("x")) {
		t.Error("expected AppError to be recognized")
	}
	if IsAppError(errors.New("x")) {
		t.Error("expected plain error not to be recognized")
	}
}
