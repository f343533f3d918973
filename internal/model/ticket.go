package model

import "time"

// Ticket records one booking of one or more seats on a show.
//
// Fields:
//  Number     – ticket number, assigned sequentially and never reused.
//  Phone      – buyer phone number (8 digits, leading 6, 8 or 9).
//  ShowNumber – show the seats belong to.
//  Seats      – booked seats in the order they were requested.
//  CreatedAt  – booking time, used for the cancellation window.
type Ticket struct {
	Number     int
	Phone      int
	ShowNumber int
	Seats      []SeatCode
	CreatedAt  time.Time
}

// SameAs compares tickets by identity: ticket number and phone.
func (t *Ticket) SameAs(o *Ticket) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Number == o.Number && t.Phone == o.Phone
}

// SeatLabels returns the seat codes in their textual form.
func (t *Ticket) SeatLabels() []string {
	out := make([]string, 0, len(t.Seats))
	for _, s := range t.Seats {
		out = append(out, s.String())
	}
	return out
}
