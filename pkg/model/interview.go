package model

import (
	"time"
)

type InterviewStatus string

const (
	StatusScheduled InterviewStatus = "scheduled"
	StatusCancelled InterviewStatus = "cancelled"
)

// Interview is one interview reservation. It is created once by the
// scheduler, mutated only by cancellation, and never removed from the store.
type Interview struct {
	ID                 int64           `json:"id"`
	CandidateName      string          `json:"candidate_name" validate:"required,min=1,max=200"`
	CandidateEmail     string          `json:"candidate_email" validate:"required,min=3,max=254"`
	InterviewType      string          `json:"interview_type" validate:"required,min=1,max=100"`
	Interval           Interval        `json:"interval"`
	DurationMinutes    int             `json:"duration_minutes"`
	Status             InterviewStatus `json:"status"`
	MeetingReference   string          `json:"meeting_reference"`
	CreatedAt          time.Time       `json:"created_at"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
}

// Active reports whether the interview participates in conflict checks.
func (i *Interview) Active() bool {
	return i.Status == StatusScheduled
}

// ScheduleRequest is the caller-supplied input for scheduling an interview.
// Date and Time stay strings up to the service boundary where they are parsed
// strictly; ambiguous or malformed values are rejected, never defaulted.
type ScheduleRequest struct {
	CandidateName   string `json:"candidate_name" validate:"required,min=1,max=200"`
	CandidateEmail  string `json:"candidate_email" validate:"required,email,max=254"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	InterviewType   string `json:"interview_type" validate:"omitempty,min=1,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,max=480"`
}

// CancelRequest carries the reason for a cancellation.
type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Conflict describes one active interview that collides with a candidate
// interval. Only the fields a caller needs for diagnostics are exposed.
type Conflict struct {
	InterviewID   int64     `json:"interview_id"`
	CandidateName string    `json:"candidate"`
	StartTime     time.Time `json:"time"`
}

// CalendarInvite is the invite-shaped payload handed to the external
// collaborator responsible for actually delivering invitations.
type CalendarInvite struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
}

// ScheduleResult is the structured outcome of a scheduling attempt. A
// conflict is a reported business failure, not an error condition.
type ScheduleResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Interview      *Interview      `json:"interview,omitempty"`
	CalendarInvite *CalendarInvite `json:"calendar_invite,omitempty"`
	Conflicts      []Conflict      `json:"conflicts,omitempty"`
}

// Slot is one free slot from the daily schedule template.
type Slot struct {
	Time      string    `json:"time"`
	StartsAt  time.Time `json:"datetime"`
	Available bool      `json:"available"`
}
