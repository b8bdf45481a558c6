package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSlotStartTimes       = "SLOT_START_TIMES"
	EnvSlotDurationMin      = "SLOT_DURATION_MIN"
	EnvDefaultInterviewType = "DEFAULT_INTERVIEW_TYPE"
	EnvDefaultDurationMin   = "DEFAULT_DURATION_MIN"
	EnvMeetingLinkBaseURL   = "MEETING_LINK_BASE_URL"

	EnvEventsEnabled = "EVENTS_ENABLED"
)
