package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hireline/pkg/logger"
)

var slotTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Config struct {
	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Daily schedule template for the slot planner. Start times are HH:MM
	// strings applied to every calendar date, each slot SlotDurationMin long.
	SlotStartTimes  []string
	SlotDurationMin int

	DefaultInterviewType string
	DefaultDurationMin   int

	MeetingLinkBaseURL string

	EventsEnabled bool

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		SlotStartTimes:  splitTimes(getEnvStr(EnvSlotStartTimes, DefaultSlotStartTimes)),
		SlotDurationMin: getEnvNum(EnvSlotDurationMin, DefaultSlotDurationMin),

		DefaultInterviewType: getEnvStr(EnvDefaultInterviewType, DefaultDefaultInterviewType),
		DefaultDurationMin:   getEnvNum(EnvDefaultDurationMin, DefaultDefaultDurationMin),

		MeetingLinkBaseURL: getEnvStr(EnvMeetingLinkBaseURL, DefaultMeetingLinkBaseURL),

		EventsEnabled: getEnvBool(EnvEventsEnabled, DefaultEventsEnabled),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if len(cfg.SlotStartTimes) == 0 {
		errors = append(errors, "SlotStartTimes cannot be empty")
	}
	for _, t := range cfg.SlotStartTimes {
		if !slotTimeRegex.MatchString(t) {
			errors = append(errors, fmt.Sprintf("SlotStartTimes entries must be in HH:MM format (00:00-23:59), got: %s", t))
		}
	}

	if cfg.SlotDurationMin <= 0 {
		errors = append(errors, fmt.Sprintf("SlotDurationMin must be positive, got: %d", cfg.SlotDurationMin))
	}
	if cfg.DefaultDurationMin <= 0 {
		errors = append(errors, fmt.Sprintf("DefaultDurationMin must be positive, got: %d", cfg.DefaultDurationMin))
	}
	if cfg.DefaultInterviewType == "" {
		errors = append(errors, "DefaultInterviewType cannot be empty")
	}
	if cfg.MeetingLinkBaseURL == "" {
		errors = append(errors, "MeetingLinkBaseURL cannot be empty")
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"slot_start_times", strings.Join(cfg.SlotStartTimes, ","),
		"slot_duration_min", cfg.SlotDurationMin,
		"default_interview_type", cfg.DefaultInterviewType,
		"default_duration_min", cfg.DefaultDurationMin,
		"meeting_link_base_url", cfg.MeetingLinkBaseURL,
		"events_enabled", cfg.EventsEnabled,
	)
}

func splitTimes(s string) []string {
	parts := strings.Split(s, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			times = append(times, trimmed)
		}
	}
	return times
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
