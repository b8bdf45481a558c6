package validator

import (
	"errors"
	"strings"
	"testing"

	"hireline/pkg/logger"
	"hireline/pkg/model"
)

func newTestValidator() *ScheduleValidator {
	return NewScheduleValidator(logger.New(logger.Config{Level: "error", Service: "test"}))
}

func validRequest() *model.ScheduleRequest {
	return &model.ScheduleRequest{
		CandidateName:   "Alice",
		CandidateEmail:  "alice@example.com",
		InterviewType:   "Technical",
		Date:            "2024-01-10",
		Time:            "09:00",
		DurationMinutes: 60,
	}
}

func TestValidateSchedule_Valid(t *testing.T) {
	v := newTestValidator()
	if err := v.ValidateSchedule(validRequest()); err != nil {
		t.Errorf("expected valid request to pass, got %v", err)
	}
}

func TestValidateSchedule_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *model.ScheduleRequest)
		field  string
	}{
		{
			name:   "missing candidate name",
			mutate: func(req *model.ScheduleRequest) { req.CandidateName = "" },
			field:  "CandidateName",
		},
		{
			name:   "missing candidate email",
			mutate: func(req *model.ScheduleRequest) { req.CandidateEmail = "" },
			field:  "CandidateEmail",
		},
		{
			name:   "missing date",
			mutate: func(req *model.ScheduleRequest) { req.Date = "" },
			field:  "Date",
		},
		{
			name:   "missing time",
			mutate: func(req *model.ScheduleRequest) { req.Time = "" },
			field:  "Time",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.ValidateSchedule(req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %s, got %v", tt.field, validationErrs)
			}
		})
	}
}

func TestValidateSchedule_InvalidEmail(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.CandidateEmail = "not-an-email"

	err := v.ValidateSchedule(req)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "valid email address") {
		t.Errorf("expected email message, got %v", err)
	}
}

func TestValidateSchedule_DurationTooLong(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.DurationMinutes = 481

	err := v.ValidateSchedule(req)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "at most 480") {
		t.Errorf("expected max duration message, got %v", err)
	}
}

func TestValidateSchedule_ZeroDurationAllowed(t *testing.T) {
	// Zero means "use the default"; the service fills it in before validation
	// of the interval itself.
	v := newTestValidator()
	req := validRequest()
	req.DurationMinutes = 0

	if err := v.ValidateSchedule(req); err != nil {
		t.Errorf("expected zero duration to pass shape validation, got %v", err)
	}
}

func TestValidateSchedule_MultipleErrors(t *testing.T) {
	v := newTestValidator()
	req := &model.ScheduleRequest{}

	err := v.ValidateSchedule(req)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(validationErrs) < 4 {
		t.Errorf("expected at least 4 field errors for empty request, got %d: %v", len(validationErrs), validationErrs)
	}
}

func TestValidateCancel(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateCancel(&model.CancelRequest{Reason: "candidate withdrew"}); err != nil {
		t.Errorf("expected cancel request with reason to pass, got %v", err)
	}
	if err := v.ValidateCancel(&model.CancelRequest{}); err != nil {
		t.Errorf("expected cancel request without reason to pass, got %v", err)
	}
}
