// Package queue defines the booking event payloads exchanged over the
// message broker and the journal format they are recorded in.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/booking-a-show/internal/model"
)

// Event types carried in TicketEvent.Type.
const (
	TypeTicketBooked         = "ticket.booked"
	TypeTicketCancelled      = "ticket.cancelled"
	TypeTicketCancelRejected = "ticket.cancel_rejected"
)

// DefaultQueueName is the durable queue (and Redis channel) events are
// routed to unless configured otherwise.
const DefaultQueueName = "booking.events"

// TicketEvent is published after a booking or a cancellation attempt.
// It contains enough information for downstream consumers to log or
// notify without access to the session's in-memory state.
type TicketEvent struct {
	EventID      string   `json:"event_id"`
	Type         string   `json:"type"`
	TicketNumber int      `json:"ticket_number"`
	ShowNumber   int      `json:"show_number"`
	Phone        int      `json:"phone"`
	SeatLabels   []string `json:"seats"`
	WindowMins   int      `json:"window_mins"`
	OverageMins  int      `json:"overage_mins,omitempty"`
	OccurredAt   string   `json:"occurred_at"`
}

// NewTicketEvent builds an event of the given type for a ticket.  The
// window comes from the ticket's show; overage is only meaningful for
// rejected cancellations.
func NewTicketEvent(typ string, t *model.Ticket, windowMins, overageMins int, at time.Time) TicketEvent {
	return TicketEvent{
		EventID:      uuid.NewString(),
		Type:         typ,
		TicketNumber: t.Number,
		ShowNumber:   t.ShowNumber,
		Phone:        t.Phone,
		SeatLabels:   t.SeatLabels(),
		WindowMins:   windowMins,
		OverageMins:  overageMins,
		OccurredAt:   at.UTC().Format(time.RFC3339),
	}
}
