package model

// Show represents one configured screening.  It owns its seating grid
// and the tickets booked against it.  Dimensions and the cancellation
// window are fixed at creation.
//
// Fields:
//  Number      – show number, unique across the registry.
//  Rows        – number of seating rows (1..MaxRows).
//  SeatsPerRow – number of seats in each row (1..MaxSeatsPerRow).
//  WindowMins  – minutes after booking during which a ticket may be
//                cancelled.
type Show struct {
	Number      int
	Rows        int
	SeatsPerRow int
	WindowMins  int

	// occupied is never handed out; callers go through Occupy/Release
	// so the grid always mirrors the live tickets.
	occupied [][]bool
	tickets  []*Ticket
}

// NewShow builds a show with every seat free and no tickets.
func NewShow(number, rows, seatsPerRow, windowMins int) *Show {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, seatsPerRow)
	}
	return &Show{
		Number:      number,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		WindowMins:  windowMins,
		occupied:    grid,
	}
}

// InBounds reports whether the seat lies inside the grid.
func (s *Show) InBounds(c SeatCode) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.SeatsPerRow
}

// IsOccupied reports whether the seat is held by a live ticket.  Seats
// outside the grid are reported as occupied so they can never be booked.
func (s *Show) IsOccupied(c SeatCode) bool {
	if !s.InBounds(c) {
		return true
	}
	return s.occupied[c.Row][c.Col]
}

// Occupy marks the seats as taken.  Out-of-grid seats are ignored.
func (s *Show) Occupy(seats []SeatCode) {
	s.mark(seats, true)
}

// Release marks the seats as free again.
func (s *Show) Release(seats []SeatCode) {
	s.mark(seats, false)
}

func (s *Show) mark(seats []SeatCode, flag bool) {
	for _, c := range seats {
		if s.InBounds(c) {
			s.occupied[c.Row][c.Col] = flag
		}
	}
}

// FreeSeats counts the seats not held by any ticket.
func (s *Show) FreeSeats() int {
	n := 0
	for _, row := range s.occupied {
		for _, taken := range row {
			if !taken {
				n++
			}
		}
	}
	return n
}

// AddTicket appends a ticket to the show's booking list.
func (s *Show) AddTicket(t *Ticket) {
	s.tickets = append(s.tickets, t)
}

// RemoveTicket drops the ticket matching t's identity.  It reports
// whether a ticket was removed.
func (s *Show) RemoveTicket(t *Ticket) bool {
	for i, cur := range s.tickets {
		if cur.SameAs(t) {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return true
		}
	}
	return false
}

// Tickets returns the show's tickets in booking order.  The slice is a
// copy; the tickets themselves are shared.
func (s *Show) Tickets() []*Ticket {
	out := make([]*Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// HasPhone reports whether a live ticket on this show was booked with
// the given phone number.
func (s *Show) HasPhone(phone int) bool {
	for _, t := range s.tickets {
		if t.Phone == phone {
			return true
		}
	}
	return false
}
