package models

import "time"

// Event kinds published when a message changes.
const (
	EventMessageCreated = "message.created"
	EventMessageUpdated = "message.updated"
	EventMessageDeleted = "message.deleted"
)

// MessageEvent describes a change to a message.
type MessageEvent struct {
	Type       string    `json:"type"`
	MessageID  string    `json:"message_id"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
