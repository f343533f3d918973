// Package handler applies validated commands to the show registry and
// ticket ledger and produces the text shown to the user.
package handler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/iliyamo/booking-a-show/internal/clock"
	"github.com/iliyamo/booking-a-show/internal/command"
	"github.com/iliyamo/booking-a-show/internal/model"
	"github.com/iliyamo/booking-a-show/internal/queue"
	"github.com/iliyamo/booking-a-show/internal/repository"
	"github.com/iliyamo/booking-a-show/internal/service"
)

// DefaultPublishTimeout bounds a single event publish.
const DefaultPublishTimeout = 2 * time.Second

// Handler is the per-session state: the active mode, the registries and
// the collaborators used while executing commands.  It is created once
// at startup and is not safe for concurrent use.
type Handler struct {
	Shows          *repository.ShowRepo
	Tickets        *repository.TicketRepo
	Clock          clock.Clock
	Events         service.Publisher
	PublishTimeout time.Duration

	mode model.Mode
}

// NewHandler constructs a Handler in admin mode.  A nil clock means the
// system clock and a nil publisher discards events; the repositories
// are required.
func NewHandler(shows *repository.ShowRepo, tickets *repository.TicketRepo, clk clock.Clock, events service.Publisher) *Handler {
	if shows == nil || tickets == nil {
		panic("nil repository passed to NewHandler")
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if events == nil {
		events = service.Nop{}
	}
	return &Handler{
		Shows:          shows,
		Tickets:        tickets,
		Clock:          clk,
		Events:         events,
		PublishTimeout: DefaultPublishTimeout,
		mode:           model.ModeAdmin,
	}
}

// Mode returns the active role.
func (h *Handler) Mode() model.Mode {
	return h.mode
}

// Execute applies a validated command and returns its output.  A
// command that passed validation cannot fail for business reasons; an
// error here means the registries changed between parse and execute.
func (h *Handler) Execute(ctx context.Context, cmd command.Command) (string, error) {
	switch c := cmd.(type) {
	case command.Mode:
		h.mode = c.Target
		return ModeBanner(c.Target), nil
	case command.Setup:
		return h.setup(c)
	case command.View:
		show, err := h.Shows.GetByNumber(c.ShowNumber)
		if err != nil {
			return "", err
		}
		return RenderShow(show), nil
	case command.Availability:
		show, err := h.Shows.GetByNumber(c.ShowNumber)
		if err != nil {
			return "", err
		}
		return RenderAvailability(show), nil
	case command.Book:
		return h.book(ctx, c)
	case command.Cancel:
		return h.cancel(ctx, c)
	case command.Exit:
		return "", nil
	}
	return "", fmt.Errorf("unsupported command %T", cmd)
}

func (h *Handler) setup(c command.Setup) (string, error) {
	show := model.NewShow(c.ShowNumber, c.Rows, c.SeatsPerRow, c.WindowMins)
	if err := h.Shows.Create(show); err != nil {
		return "", err
	}
	return MsgSetup, nil
}

func (h *Handler) book(ctx context.Context, c command.Book) (string, error) {
	show, err := h.Shows.GetByNumber(c.ShowNumber)
	if err != nil {
		return "", err
	}
	for _, seat := range c.Seats {
		if show.IsOccupied(seat) {
			return "", fmt.Errorf("seat %s on show %d is no longer free", seat, show.Number)
		}
	}
	show.Occupy(c.Seats)

	seats := make([]model.SeatCode, len(c.Seats))
	copy(seats, c.Seats)
	ticket := &model.Ticket{
		Number:     h.Tickets.NextNumber(),
		Phone:      c.Phone,
		ShowNumber: show.Number,
		Seats:      seats,
		CreatedAt:  h.Clock.Now(),
	}
	show.AddTicket(ticket)
	h.Tickets.Create(ticket)

	h.publish(ctx, queue.NewTicketEvent(queue.TypeTicketBooked, ticket, show.WindowMins, 0, ticket.CreatedAt))
	return MsgBook + strconv.Itoa(ticket.Number), nil
}

func (h *Handler) cancel(ctx context.Context, c command.Cancel) (string, error) {
	ticket, err := h.Tickets.GetByNumber(c.TicketNumber)
	if err != nil {
		return "", err
	}
	show, err := h.Shows.GetByNumber(ticket.ShowNumber)
	if err != nil {
		return "", err
	}

	now := h.Clock.Now()
	elapsed := int(now.Sub(ticket.CreatedAt) / time.Minute) // whole minutes, truncated
	if elapsed > show.WindowMins {
		overage := elapsed - show.WindowMins
		h.publish(ctx, queue.NewTicketEvent(queue.TypeTicketCancelRejected, ticket, show.WindowMins, overage, now))
		return MsgCancelFailure + strconv.Itoa(overage), nil
	}

	show.Release(ticket.Seats)
	show.RemoveTicket(ticket)
	if err := h.Tickets.Delete(ticket.Number); err != nil {
		return "", err
	}
	h.publish(ctx, queue.NewTicketEvent(queue.TypeTicketCancelled, ticket, show.WindowMins, 0, now))
	return MsgCancelSuccess + strconv.Itoa(ticket.Number), nil
}

// publish hands the event to the configured sink.  Failures are logged
// and never reach the user.
func (h *Handler) publish(ctx context.Context, ev queue.TicketEvent) {
	timeout := h.PublishTimeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := h.Events.Publish(ctx, ev); err != nil {
		log.Printf("booking: publish %s for ticket #%d failed: %v", ev.Type, ev.TicketNumber, err)
	}
}
