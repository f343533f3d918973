package command

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/iliyamo/booking-a-show/internal/model"
	"github.com/iliyamo/booking-a-show/internal/repository"
)

// newFixture builds a parser over a 10x10 show 100 with ticket #1
// (phone 61234567) holding D3-D5.
func newFixture(t *testing.T) *Parser {
	t.Helper()

	shows := repository.NewShowRepo()
	tickets := repository.NewTicketRepo()
	show := model.NewShow(100, 10, 10, 2)
	if err := shows.Create(show); err != nil {
		t.Fatalf("create show: %v", err)
	}
	seats := []model.SeatCode{{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}}
	show.Occupy(seats)
	ticket := &model.Ticket{
		Number:     tickets.NextNumber(),
		Phone:      61234567,
		ShowNumber: 100,
		Seats:      seats,
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	show.AddTicket(ticket)
	tickets.Create(ticket)
	return NewParser(shows, tickets)
}

func TestParser_Rejections(t *testing.T) {
	t.Parallel()

	p := newFixture(t)
	admin, buyer := model.ModeAdmin, model.ModeBuyer

	cases := []struct {
		name   string
		line   string
		mode   model.Mode
		reason Reason
		msg    string
	}{
		{"empty line", "", admin, ReasonWrongParameters, "Wrong parameters"},
		{"single token", "VIEW", admin, ReasonWrongParameters, ""},
		{"leading space exit", " EXIT", admin, ReasonWrongParameters, ""},
		{"unknown command", "DELETE 100", admin, ReasonUnknownCommand, "Command does not exist"},
		{"mode extra args", "MODE BUYER now", admin, ReasonWrongParameters, ""},
		{"mode unknown role", "MODE GUEST", admin, ReasonWrongParameters, ""},

		{"setup as buyer", "SETUP 200 10 10 2", buyer, ReasonWrongMode, "Please switch mode and try again"},
		{"setup mode before arity", "SETUP 1", buyer, ReasonWrongMode, ""},
		{"setup arity", "SETUP 200 10 10", admin, ReasonWrongParameters, ""},
		{"setup negative show", "SETUP -100 10 10 2", admin, ReasonInvalidShowNumber, "Show Number is invalid"},
		{"setup zero show", "SETUP 0 10 10 2", admin, ReasonInvalidShowNumber, ""},
		{"setup duplicate", "SETUP 100 10 10 2", admin, ReasonDuplicateShow, "Show Number already exist, please select another number"},
		{"setup duplicate before rows", "SETUP 100 99 10 2", admin, ReasonDuplicateShow, ""},
		{"setup negative rows", "SETUP 200 -2 10 2", admin, ReasonInvalidRows, "Invalid number of rows"},
		{"setup row limit", "SETUP 200 27 10 2", admin, ReasonRowLimit, "Exceeded row limit"},
		{"setup negative seats", "SETUP 200 20 -10 2", admin, ReasonInvalidSeats, "Invalid number of seats"},
		{"setup seat limit", "SETUP 200 20 11 2", admin, ReasonSeatLimit, "Exceeded seat limit"},
		{"setup negative window", "SETUP 200 20 10 -2", admin, ReasonInvalidWindow, "Invalid window period"},
		{"setup bad number", "SETUP abc 10 10 2", admin, ReasonInvalidNumber, `invalid number "abc": invalid syntax`},

		{"view as buyer", "VIEW 100", buyer, ReasonWrongMode, ""},
		{"view unknown show", "VIEW 300", admin, ReasonShowNotFound, "Show Number does not exist"},
		{"availability as admin", "AVAILABILITY 100", admin, ReasonWrongMode, ""},
		{"availability arity", "AVAILABILITY 100 200", buyer, ReasonWrongParameters, ""},
		{"availability unknown show", "AVAILABILITY 300", buyer, ReasonShowNotFound, ""},

		{"book as admin", "BOOK 100 91234567 A1", admin, ReasonWrongMode, ""},
		{"book arity", "BOOK 100 91234567", buyer, ReasonWrongParameters, ""},
		{"book unknown show", "BOOK 200 61234567 D3,D4,D5", buyer, ReasonShowNotFound, ""},
		{"book out of grid column", "BOOK 100 91234567 D12,A2", buyer, ReasonInvalidSeat, "Seat is invalid: D12"},
		{"book out of grid row", "BOOK 100 91234567 A1,K1", buyer, ReasonInvalidSeat, "Seat is invalid: K1"},
		{"book occupied seat", "BOOK 100 91234567 A1,d4", buyer, ReasonInvalidSeat, "Seat is invalid: d4"},
		{"book zero column", "BOOK 100 91234567 A0", buyer, ReasonInvalidSeat, "Seat is invalid: A0"},
		{"book malformed seat", "BOOK 100 91234567 1A", buyer, ReasonInvalidSeat, "Seat is invalid: 1A"},
		{"book repeated seat", "BOOK 100 91234567 A1,a1", buyer, ReasonInvalidSeat, "Seat is invalid: a1"},
		{"book blank seat list", "BOOK 100 91234567 ,,", buyer, ReasonInvalidSeat, "Seat is invalid: ,,"},
		{"book seats before phone", "BOOK 100 123 Z1", buyer, ReasonInvalidSeat, ""},
		{"book short phone", "BOOK 100 123 D6", buyer, ReasonInvalidPhone, "Phone Number is invalid, must be 8 digits and starts with either 6, 8 or 9"},
		{"book negative phone", "BOOK 100 -6123456 D6", buyer, ReasonInvalidPhone, ""},
		{"book wrong leading digit", "BOOK 100 71234567 D6", buyer, ReasonInvalidPhone, ""},
		{"book non numeric phone", "BOOK 100 6123456x D6", buyer, ReasonInvalidNumber, ""},
		{"book duplicate phone", "BOOK 100 61234567 A1", buyer, ReasonDuplicatePhone, "Phone Number has been used for this show, only one booking is allowed per show"},

		{"cancel as admin", "CANCEL 1 61234567", admin, ReasonWrongMode, ""},
		{"cancel arity", "CANCEL 1", buyer, ReasonWrongParameters, ""},
		{"cancel unknown ticket", "CANCEL 2 61234567", buyer, ReasonTicketNotFound, "Ticket Number does not exist"},
		{"cancel phone mismatch", "CANCEL 1 21234567", buyer, ReasonTicketPhoneMismatch, "Ticket Number with this Phone Number does not exist"},
		{"cancel bad ticket number", "CANCEL one 61234567", buyer, ReasonInvalidNumber, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := p.Parse(tc.line, tc.mode)
			if err == nil {
				t.Fatalf("expected rejection, got %#v", cmd)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Reason != tc.reason {
				t.Fatalf("expected reason %d, got %d (%v)", tc.reason, ve.Reason, err)
			}
			if tc.msg != "" && err.Error() != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, err.Error())
			}
		})
	}
}

func TestParser_Accepts(t *testing.T) {
	t.Parallel()

	p := newFixture(t)

	cases := []struct {
		name string
		line string
		mode model.Mode
		want Command
	}{
		{"exit", "exit", model.ModeBuyer, Exit{}},
		{"mode buyer lower case", "mode buyer", model.ModeAdmin, Mode{Target: model.ModeBuyer}},
		{"mode admin from buyer", "MODE Admin", model.ModeBuyer, Mode{Target: model.ModeAdmin}},
		{"setup with extra spaces", "  setup   200 26  10   5 ", model.ModeAdmin, Setup{ShowNumber: 200, Rows: 26, SeatsPerRow: 10, WindowMins: 5}},
		{"view", "VIEW 100", model.ModeAdmin, View{ShowNumber: 100}},
		{"availability", "Availability 100", model.ModeBuyer, Availability{ShowNumber: 100}},
		{
			"book skips blank entries",
			"BOOK 100 91234567 ,a1,,J10,",
			model.ModeBuyer,
			Book{ShowNumber: 100, Phone: 91234567, Seats: []model.SeatCode{{Row: 0, Col: 0}, {Row: 9, Col: 9}}},
		},
		{"cancel", "CANCEL 1 61234567", model.ModeBuyer, Cancel{TicketNumber: 1, Phone: 61234567}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(tc.line, tc.mode)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestParser_SamePhoneOtherShow(t *testing.T) {
	t.Parallel()

	p := newFixture(t)
	shows := p.Shows.(*repository.ShowRepo)
	if err := shows.Create(model.NewShow(200, 5, 5, 1)); err != nil {
		t.Fatalf("create show: %v", err)
	}
	if _, err := p.Parse("BOOK 200 61234567 A1", model.ModeBuyer); err != nil {
		t.Fatalf("expected phone to be accepted on another show, got %v", err)
	}
}

func TestReasonOf(t *testing.T) {
	t.Parallel()

	if ReasonOf(errors.New("boom")) != 0 {
		t.Fatalf("expected zero reason for plain errors")
	}
	_, err := atoi("99999999999")
	if ReasonOf(err) != ReasonInvalidNumber {
		t.Fatalf("expected ReasonInvalidNumber, got %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("expected range error to be wrapped, got %v", err)
	}
}
