// Package queue defines message payloads exchanged over the message broker.
package queue

// RecordCreatedQueue is the durable queue write routes publish to.
const RecordCreatedQueue = "festival.record_created"

// RecordCreatedEvent is published after a form route inserts a row.  It
// carries the generated key and the submitted values so consumers can log
// or notify without querying the database.
type RecordCreatedEvent struct {
	Table     string            `json:"table"`
	ID        int64             `json:"id"`
	Fields    map[string]string `json:"fields"`
	CreatedAt string            `json:"created_at"`
}
