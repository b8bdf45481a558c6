package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"hireline/internal/scheduling/conflict"
	schederrors "hireline/internal/scheduling/errors"
	"hireline/internal/scheduling/planner"
	"hireline/internal/scheduling/store"
	"hireline/internal/scheduling/validator"
	"hireline/pkg/config"
	apperrors "hireline/pkg/errors"
	"hireline/pkg/kafka"
	"hireline/pkg/model"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"

	EventInterviewScheduled = "interview.scheduled"
	EventInterviewCancelled = "interview.cancelled"
)

// EventPublisher hands lifecycle events to the external collaborator that
// delivers invites. Publishing is best-effort and never fails an operation.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type SchedulerService interface {
	Schedule(ctx context.Context, req *model.ScheduleRequest) (*model.ScheduleResult, error)
	Cancel(ctx context.Context, id int64, req *model.CancelRequest) (*model.Interview, error)
	ListScheduled(ctx context.Context, date string) ([]*model.Interview, error)
	AvailableSlots(ctx context.Context, date string, interviewType string) ([]model.Slot, error)
}

type schedulerService struct {
	store     store.InterviewStore
	checker   conflict.Checker
	planner   *planner.Planner
	validator *validator.ScheduleValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewSchedulerService(
	s store.InterviewStore,
	checker conflict.Checker,
	p *planner.Planner,
	v *validator.ScheduleValidator,
	publisher EventPublisher,
	cfg *config.Config,
) SchedulerService {
	return &schedulerService{
		store:     s,
		checker:   checker,
		planner:   p,
		validator: v,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *schedulerService) Schedule(ctx context.Context, req *model.ScheduleRequest) (*model.ScheduleResult, error) {
	s.applyDefaults(req)

	if err := s.validator.ValidateSchedule(req); err != nil {
		s.cfg.Log.Warn("Schedule request validation failed",
			"candidate", req.CandidateName,
			"error", err,
		)
		return nil, apperrors.Validation("Schedule request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, apperrors.InvalidDateTime(fmt.Sprintf("Invalid date/time format: %v", err))
	}

	interval, err := model.NewInterval(start, time.Duration(req.DurationMinutes)*time.Minute)
	if err != nil {
		return nil, apperrors.InvalidInterval(err.Error())
	}

	var result *model.ScheduleResult

	// Conflict check and insert must not interleave with another scheduling
	// attempt, or two requests for the same slot could both commit.
	err = s.store.ExecuteAtomic(ctx, func(ctx context.Context) error {
		conflicts, err := s.checker.Conflicts(ctx, interval)
		if err != nil {
			return apperrors.Internal("Failed to check scheduling conflicts", err)
		}

		if len(conflicts) > 0 {
			result = &model.ScheduleResult{
				Success:   false,
				Message:   "Time slot already booked",
				Conflicts: conflicts,
			}
			return nil
		}

		interview := &model.Interview{
			ID:               s.store.NextID(ctx),
			CandidateName:    req.CandidateName,
			CandidateEmail:   req.CandidateEmail,
			InterviewType:    req.InterviewType,
			Interval:         interval,
			DurationMinutes:  req.DurationMinutes,
			Status:           model.StatusScheduled,
			MeetingReference: s.newMeetingReference(),
			CreatedAt:        time.Now().UTC(),
		}

		if err := s.store.Append(ctx, interview); err != nil {
			return apperrors.Internal("Failed to store interview", err)
		}

		result = &model.ScheduleResult{
			Success:        true,
			Message:        fmt.Sprintf("Interview scheduled successfully for %s", req.CandidateName),
			Interview:      interview,
			CalendarInvite: buildCalendarInvite(interview),
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to schedule interview",
			"candidate", req.CandidateName,
			"error", err,
		)
		return nil, err
	}

	if !result.Success {
		s.cfg.Log.Info("Schedule attempt rejected due to conflicts",
			"candidate", req.CandidateName,
			"start", interval.Start,
			"conflicts", len(result.Conflicts),
		)
		return result, nil
	}

	s.cfg.Log.Info("Interview scheduled successfully",
		"id", result.Interview.ID,
		"candidate", result.Interview.CandidateName,
		"type", result.Interview.InterviewType,
		"start", result.Interview.Interval.Start,
	)
	s.publishEvent(ctx, EventInterviewScheduled, result.Interview)

	return result, nil
}

func (s *schedulerService) Cancel(ctx context.Context, id int64, req *model.CancelRequest) (*model.Interview, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("Interview ID must be a positive integer")
	}
	if err := s.validator.ValidateCancel(req); err != nil {
		return nil, apperrors.Validation("Cancel request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	interview, err := s.store.Cancel(ctx, id, req.Reason)
	if err != nil {
		if errors.Is(err, schederrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Interview", id)
		}
		if errors.Is(err, schederrors.ErrAlreadyCancelled) {
			return nil, apperrors.Conflict(fmt.Sprintf("Interview %d is already cancelled", id))
		}
		s.cfg.Log.Error("Failed to cancel interview", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to cancel interview", err)
	}

	s.cfg.Log.Info("Interview cancelled successfully",
		"id", interview.ID,
		"candidate", interview.CandidateName,
		"reason", req.Reason,
	)
	s.publishEvent(ctx, EventInterviewCancelled, interview)

	return interview, nil
}

func (s *schedulerService) ListScheduled(ctx context.Context, date string) ([]*model.Interview, error) {
	var (
		filterByDate bool
		year         int
		month        time.Month
		day          int
	)
	if date != "" {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, apperrors.InvalidDateTime(fmt.Sprintf("Invalid date format: %v", err))
		}
		filterByDate = true
		year, month, day = parsed.Date()
	}

	interviews, err := s.store.All(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list interviews", err)
	}

	scheduled := make([]*model.Interview, 0)
	for _, iv := range interviews {
		if !iv.Active() {
			continue
		}
		if filterByDate && !iv.Interval.OnDate(year, month, day) {
			continue
		}
		scheduled = append(scheduled, iv)
	}

	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].Interval.Start.Before(scheduled[j].Interval.Start)
	})

	return scheduled, nil
}

func (s *schedulerService) AvailableSlots(ctx context.Context, date string, interviewType string) ([]model.Slot, error) {
	if date == "" {
		return nil, apperrors.InvalidInput("Date is required")
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, apperrors.InvalidDateTime(fmt.Sprintf("Invalid date format: %v", err))
	}
	if interviewType == "" {
		interviewType = s.cfg.DefaultInterviewType
	}

	slots, err := s.planner.AvailableSlots(ctx, parsed, interviewType)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute available slots", err)
	}
	return slots, nil
}

// --- Helpers ---

func (s *schedulerService) applyDefaults(req *model.ScheduleRequest) {
	if req.InterviewType == "" {
		req.InterviewType = s.cfg.DefaultInterviewType
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = s.cfg.DefaultDurationMin
	}
}

func (s *schedulerService) newMeetingReference() string {
	return fmt.Sprintf("%s/%s", s.cfg.MeetingLinkBaseURL, uuid.NewString())
}

func parseDateTime(date, clock string) (time.Time, error) {
	return time.Parse(dateTimeLayout, date+" "+clock)
}

func buildCalendarInvite(iv *model.Interview) *model.CalendarInvite {
	return &model.CalendarInvite{
		Title: fmt.Sprintf("%s Interview - %s", iv.InterviewType, iv.CandidateName),
		Description: fmt.Sprintf("Interview with %s\nType: %s\nMeeting Link: %s",
			iv.CandidateName, iv.InterviewType, iv.MeetingReference),
		StartTime: iv.Interval.Start,
		EndTime:   iv.Interval.End,
		Location:  iv.MeetingReference,
	}
}

func (s *schedulerService) publishEvent(ctx context.Context, event string, iv *model.Interview) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"event":     event,
		"interview": iv,
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to encode lifecycle event", "event", event, "id", iv.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:       strconv.FormatInt(iv.ID, 10),
		Value:     payload,
		Headers:   map[string]string{"event": event},
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish lifecycle event", "event", event, "id", iv.ID, "error", err)
	}
}
