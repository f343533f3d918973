package repository

import "github.com/iliyamo/booking-a-show/internal/model"

// TicketRepo is the ticket ledger.  Besides storing live tickets it
// hands out ticket numbers; numbering starts at 1 and only moves
// forward, so a cancelled ticket's number is never issued again.
type TicketRepo struct {
	tickets map[int]*model.Ticket
	last    int // last number handed out by NextNumber
}

// NewTicketRepo constructs an empty ledger.
func NewTicketRepo() *TicketRepo {
	return &TicketRepo{tickets: make(map[int]*model.Ticket)}
}

// NextNumber reserves and returns the next ticket number.
func (r *TicketRepo) NextNumber() int {
	r.last++
	return r.last
}

// Create stores a ticket under its number.
func (r *TicketRepo) Create(t *model.Ticket) {
	r.tickets[t.Number] = t
}

// GetByNumber looks up a live ticket.
func (r *TicketRepo) GetByNumber(number int) (*model.Ticket, error) {
	t, ok := r.tickets[number]
	if !ok {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// Delete removes a ticket from the ledger.  Deleting an unknown number
// returns ErrTicketNotFound.
func (r *TicketRepo) Delete(number int) error {
	if _, ok := r.tickets[number]; !ok {
		return ErrTicketNotFound
	}
	delete(r.tickets, number)
	return nil
}

// Len returns the number of live tickets.
func (r *TicketRepo) Len() int {
	return len(r.tickets)
}
