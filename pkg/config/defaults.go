package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Standard interview hours: 9 AM - 5 PM with a lunch gap.
	DefaultSlotStartTimes = "09:00,10:00,11:00,13:00,14:00,15:00,16:00"

	DefaultSlotDurationMin      = 60
	DefaultDefaultInterviewType = "Technical"
	DefaultDefaultDurationMin   = 60

	DefaultMeetingLinkBaseURL = "https://meet.company.com"

	DefaultEventsEnabled = false
)
