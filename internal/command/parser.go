package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/booking-a-show/internal/model"
)

// ShowFinder looks up registered shows.  repository.ShowRepo satisfies it.
type ShowFinder interface {
	GetByNumber(number int) (*model.Show, error)
	Exists(number int) bool
}

// TicketFinder looks up live tickets.  repository.TicketRepo satisfies it.
type TicketFinder interface {
	GetByNumber(number int) (*model.Ticket, error)
}

// Parser validates lines against the current registry state.
type Parser struct {
	Shows   ShowFinder
	Tickets TicketFinder
}

// NewParser constructs a Parser and panics if any dependency is nil.
func NewParser(shows ShowFinder, tickets TicketFinder) *Parser {
	if shows == nil || tickets == nil {
		panic("nil repository passed to NewParser")
	}
	return &Parser{Shows: shows, Tickets: tickets}
}

// IsExit reports whether the whole line is the exit command.  The
// comparison ignores letter case but not surrounding whitespace.
func IsExit(line string) bool {
	return strings.EqualFold(line, string(KindExit))
}

// Parse validates one input line issued in the given mode.  The first
// failing rule wins; on failure the returned error is a
// *ValidationError and no state has been touched.
func (p *Parser) Parse(line string, mode model.Mode) (Command, error) {
	if IsExit(line) {
		return Exit{}, nil
	}
	args := tokenize(line)
	if len(args) < 2 {
		return nil, fail(ReasonWrongParameters)
	}

	switch Kind(strings.ToUpper(args[0])) {
	case KindMode:
		return parseMode(args)
	case KindSetup:
		return p.parseSetup(args, mode)
	case KindView:
		n, err := p.parseShowQuery(args, mode, model.ModeAdmin)
		if err != nil {
			return nil, err
		}
		return View{ShowNumber: n}, nil
	case KindAvailability:
		n, err := p.parseShowQuery(args, mode, model.ModeBuyer)
		if err != nil {
			return nil, err
		}
		return Availability{ShowNumber: n}, nil
	case KindBook:
		return p.parseBook(args, mode)
	case KindCancel:
		return p.parseCancel(args, mode)
	}
	return nil, fail(ReasonUnknownCommand)
}

// tokenize splits on single spaces and drops the empty pieces left by
// runs of spaces.
func tokenize(line string) []string {
	parts := strings.Split(line, " ")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseMode(args []string) (Command, error) {
	if len(args) != 2 {
		return nil, fail(ReasonWrongParameters)
	}
	m, ok := model.ParseMode(args[1])
	if !ok {
		return nil, fail(ReasonWrongParameters)
	}
	return Mode{Target: m}, nil
}

func (p *Parser) parseSetup(args []string, mode model.Mode) (Command, error) {
	if mode != model.ModeAdmin {
		return nil, fail(ReasonWrongMode)
	}
	if len(args) != 5 {
		return nil, fail(ReasonWrongParameters)
	}
	show, err := atoi(args[1])
	if err != nil {
		return nil, err
	}
	if show <= 0 {
		return nil, fail(ReasonInvalidShowNumber)
	}
	if p.Shows.Exists(show) {
		return nil, fail(ReasonDuplicateShow)
	}
	rows, err := atoi(args[2])
	if err != nil {
		return nil, err
	}
	if rows <= 0 {
		return nil, fail(ReasonInvalidRows)
	}
	if rows > model.MaxRows {
		return nil, fail(ReasonRowLimit)
	}
	seats, err := atoi(args[3])
	if err != nil {
		return nil, err
	}
	if seats <= 0 {
		return nil, fail(ReasonInvalidSeats)
	}
	if seats > model.MaxSeatsPerRow {
		return nil, fail(ReasonSeatLimit)
	}
	window, err := atoi(args[4])
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, fail(ReasonInvalidWindow)
	}
	return Setup{ShowNumber: show, Rows: rows, SeatsPerRow: seats, WindowMins: window}, nil
}

// parseShowQuery handles the two single-argument show lookups, VIEW and
// AVAILABILITY, which differ only in the role they require.
func (p *Parser) parseShowQuery(args []string, mode, required model.Mode) (int, error) {
	if mode != required {
		return 0, fail(ReasonWrongMode)
	}
	if len(args) != 2 {
		return 0, fail(ReasonWrongParameters)
	}
	show, err := atoi(args[1])
	if err != nil {
		return 0, err
	}
	if !p.Shows.Exists(show) {
		return 0, fail(ReasonShowNotFound)
	}
	return show, nil
}

func (p *Parser) parseBook(args []string, mode model.Mode) (Command, error) {
	if mode != model.ModeBuyer {
		return nil, fail(ReasonWrongMode)
	}
	if len(args) != 4 {
		return nil, fail(ReasonWrongParameters)
	}
	number, err := atoi(args[1])
	if err != nil {
		return nil, err
	}
	show, err := p.Shows.GetByNumber(number)
	if err != nil {
		return nil, fail(ReasonShowNotFound)
	}

	seats, err := parseSeats(show, args[3])
	if err != nil {
		return nil, err
	}

	phone, err := atoi(args[2])
	if err != nil {
		return nil, err
	}
	if !validPhone(args[2], phone) {
		return nil, fail(ReasonInvalidPhone)
	}
	if show.HasPhone(phone) {
		return nil, fail(ReasonDuplicatePhone)
	}
	return Book{ShowNumber: number, Phone: phone, Seats: seats}, nil
}

// parseSeats validates a comma separated seat list against the show's
// grid.  Blank entries are skipped.  The first entry that is malformed,
// outside the grid, already taken or repeated in the list is reported.
func parseSeats(show *model.Show, list string) ([]model.SeatCode, error) {
	var seats []model.SeatCode
	seen := make(map[model.SeatCode]struct{})
	for _, entry := range strings.Split(list, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		code, ok := model.ParseSeatCode(entry)
		if !ok || !show.InBounds(code) || show.IsOccupied(code) {
			return nil, &ValidationError{Reason: ReasonInvalidSeat, Detail: entry}
		}
		if _, dup := seen[code]; dup {
			return nil, &ValidationError{Reason: ReasonInvalidSeat, Detail: entry}
		}
		seen[code] = struct{}{}
		seats = append(seats, code)
	}
	if len(seats) == 0 {
		return nil, &ValidationError{Reason: ReasonInvalidSeat, Detail: list}
	}
	return seats, nil
}

// validPhone checks the raw token shape: eight characters, a positive
// value, and a leading 6, 8 or 9.
func validPhone(raw string, n int) bool {
	if n <= 0 || len(raw) != 8 {
		return false
	}
	switch raw[0] {
	case '6', '8', '9':
		return true
	}
	return false
}

func (p *Parser) parseCancel(args []string, mode model.Mode) (Command, error) {
	if mode != model.ModeBuyer {
		return nil, fail(ReasonWrongMode)
	}
	if len(args) != 3 {
		return nil, fail(ReasonWrongParameters)
	}
	number, err := atoi(args[1])
	if err != nil {
		return nil, err
	}
	ticket, err := p.Tickets.GetByNumber(number)
	if err != nil {
		return nil, fail(ReasonTicketNotFound)
	}
	phone, err := atoi(args[2])
	if err != nil {
		return nil, err
	}
	if ticket.Phone != phone {
		return nil, fail(ReasonTicketPhoneMismatch)
	}
	return Cancel{TicketNumber: number, Phone: phone}, nil
}

// atoi parses a 32-bit signed decimal.  Failures become
// ReasonInvalidNumber errors carrying the strconv description.
func atoi(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		cause := err
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			cause = ne.Err
		}
		return 0, &ValidationError{
			Reason: ReasonInvalidNumber,
			Detail: s,
			Err:    fmt.Errorf("invalid number %q: %w", s, cause),
		}
	}
	return int(n), nil
}
