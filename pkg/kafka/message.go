package kafka

import "time"

// Message is one event published to the interview-events topic.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}
