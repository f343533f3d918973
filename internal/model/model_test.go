package model

import (
	"testing"
	"time"
)

func TestParseSeatCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want SeatCode
		ok   bool
	}{
		{raw: "A1", want: SeatCode{Row: 0, Col: 0}, ok: true},
		{raw: "d3", want: SeatCode{Row: 3, Col: 2}, ok: true},
		{raw: "J10", want: SeatCode{Row: 9, Col: 9}, ok: true},
		{raw: "Z12", want: SeatCode{Row: 25, Col: 11}, ok: true},
		{raw: "A0"},
		{raw: "A"},
		{raw: "3A"},
		{raw: "A-1"},
		{raw: "A+1"},
		{raw: "AB"},
		{raw: "@1"},
		{raw: ""},
	}
	for _, tc := range cases {
		got, ok := ParseSeatCode(tc.raw)
		if ok != tc.ok {
			t.Fatalf("ParseSeatCode(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseSeatCode(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestSeatCodeString(t *testing.T) {
	t.Parallel()

	if got := (SeatCode{Row: 3, Col: 2}).String(); got != "D3" {
		t.Fatalf("expected D3, got %s", got)
	}
	if got := (SeatCode{Row: 25, Col: 9}).String(); got != "Z10" {
		t.Fatalf("expected Z10, got %s", got)
	}
}

func TestRowLabelRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < 60; i++ {
		label := RowLabel(i)
		idx, ok := RowIndex(label)
		if !ok || idx != i {
			t.Fatalf("RowIndex(RowLabel(%d)=%q) = %d, %v", i, label, idx, ok)
		}
	}
	if RowLabel(-1) != "" {
		t.Fatalf("expected empty label for negative index")
	}
}

func TestShowGrid(t *testing.T) {
	t.Parallel()

	t.Run("new show is fully free", func(t *testing.T) {
		s := NewShow(100, 10, 10, 2)
		if got := s.FreeSeats(); got != 100 {
			t.Fatalf("expected 100 free seats, got %d", got)
		}
		if len(s.Tickets()) != 0 {
			t.Fatalf("expected no tickets")
		}
	})

	t.Run("occupy and release touch only the given seats", func(t *testing.T) {
		s := NewShow(1, 3, 4, 5)
		seats := []SeatCode{{Row: 1, Col: 0}, {Row: 2, Col: 3}}
		s.Occupy(seats)
		for r := 0; r < 3; r++ {
			for c := 0; c < 4; c++ {
				code := SeatCode{Row: r, Col: c}
				want := code == seats[0] || code == seats[1]
				if s.IsOccupied(code) != want {
					t.Fatalf("seat %s occupied = %v, want %v", code, s.IsOccupied(code), want)
				}
			}
		}
		s.Release(seats)
		if got := s.FreeSeats(); got != 12 {
			t.Fatalf("expected all 12 seats free, got %d", got)
		}
	})

	t.Run("out of grid seats count as occupied", func(t *testing.T) {
		s := NewShow(1, 2, 2, 1)
		if !s.IsOccupied(SeatCode{Row: 2, Col: 0}) || !s.IsOccupied(SeatCode{Row: 0, Col: -1}) {
			t.Fatalf("expected out of grid seats to be unavailable")
		}
		s.Occupy([]SeatCode{{Row: 5, Col: 5}})
		if got := s.FreeSeats(); got != 4 {
			t.Fatalf("expected grid untouched, got %d free", got)
		}
	})
}

func TestShowTickets(t *testing.T) {
	t.Parallel()

	s := NewShow(7, 5, 5, 2)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := &Ticket{Number: 1, Phone: 61234567, ShowNumber: 7, CreatedAt: now}
	b := &Ticket{Number: 2, Phone: 91234567, ShowNumber: 7, CreatedAt: now}
	s.AddTicket(a)
	s.AddTicket(b)

	if !s.HasPhone(61234567) || s.HasPhone(81234567) {
		t.Fatalf("unexpected phone lookup result")
	}
	if s.RemoveTicket(&Ticket{Number: 1, Phone: 99999999}) {
		t.Fatalf("expected identity mismatch to keep the ticket")
	}
	if !s.RemoveTicket(&Ticket{Number: 1, Phone: 61234567}) {
		t.Fatalf("expected ticket 1 to be removed")
	}
	got := s.Tickets()
	if len(got) != 1 || got[0] != b {
		t.Fatalf("expected only ticket 2 to remain, got %+v", got)
	}
	if s.HasPhone(61234567) {
		t.Fatalf("expected phone to be free again after removal")
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMode("buyer"); !ok || m != ModeBuyer {
		t.Fatalf("expected buyer mode")
	}
	if m, ok := ParseMode("Admin"); !ok || m != ModeAdmin {
		t.Fatalf("expected admin mode")
	}
	if _, ok := ParseMode("guest"); ok {
		t.Fatalf("expected unknown mode to fail")
	}
}
