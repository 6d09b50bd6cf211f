// Package model defines the core domain models used throughout the application.
package model

import "time"

// Message represents a single inbound text message before classification.
// It is owned by the caller and never mutated by the engine.
type Message struct {
	ReceivedAt time.Time
	Sender     string
	Body       string
}

// ManualEntrySender is the synthetic sender id used for user-entered
// transactions. Messages carrying it bypass duplicate detection.
const ManualEntrySender = "Manual Entry"

// IsManualEntry reports whether the message was entered by hand rather
// than received from a financial sender.
func (m Message) IsManualEntry() bool {
	return m.Sender == ManualEntrySender
}
