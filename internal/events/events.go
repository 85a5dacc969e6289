package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names what happened to a record, e.g. "weight.created"
type Type string

// Action is the kind of mutation
type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

// TypeOf builds the event type for a record kind and action
func TypeOf(kind string, action Action) Type {
	return Type(kind + "." + string(action))
}

// Event is published after every successful record mutation
type Event struct {
	Type       Type      `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	RecordID   int64     `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers record events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
