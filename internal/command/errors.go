package command

import (
	"errors"
	"fmt"
)

// Reason tags the rule a rejected line violated.
type Reason int

const (
	ReasonWrongParameters Reason = iota + 1
	ReasonUnknownCommand
	ReasonWrongMode
	ReasonInvalidNumber
	ReasonInvalidShowNumber
	ReasonDuplicateShow
	ReasonInvalidRows
	ReasonRowLimit
	ReasonInvalidSeats
	ReasonSeatLimit
	ReasonInvalidWindow
	ReasonShowNotFound
	ReasonInvalidSeat
	ReasonInvalidPhone
	ReasonDuplicatePhone
	ReasonTicketNotFound
	ReasonTicketPhoneMismatch
)

var messages = map[Reason]string{
	ReasonWrongParameters:     "Wrong parameters",
	ReasonUnknownCommand:      "Command does not exist",
	ReasonWrongMode:           "Please switch mode and try again",
	ReasonInvalidShowNumber:   "Show Number is invalid",
	ReasonDuplicateShow:       "Show Number already exist, please select another number",
	ReasonInvalidRows:         "Invalid number of rows",
	ReasonRowLimit:            "Exceeded row limit",
	ReasonInvalidSeats:        "Invalid number of seats",
	ReasonSeatLimit:           "Exceeded seat limit",
	ReasonInvalidWindow:       "Invalid window period",
	ReasonShowNotFound:        "Show Number does not exist",
	ReasonInvalidSeat:         "Seat is invalid: ",
	ReasonInvalidPhone:        "Phone Number is invalid, must be 8 digits and starts with either 6, 8 or 9",
	ReasonDuplicatePhone:      "Phone Number has been used for this show, only one booking is allowed per show",
	ReasonTicketNotFound:      "Ticket Number does not exist",
	ReasonTicketPhoneMismatch: "Ticket Number with this Phone Number does not exist",
}

// ValidationError reports why a line was rejected.  Detail carries the
// offending seat entry for ReasonInvalidSeat; Err carries the parse
// failure for ReasonInvalidNumber.
type ValidationError struct {
	Reason Reason
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonInvalidSeat:
		return messages[e.Reason] + e.Detail
	case ReasonInvalidNumber:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "Invalid number"
	}
	if m, ok := messages[e.Reason]; ok {
		return m
	}
	return fmt.Sprintf("validation failed (reason %d)", int(e.Reason))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ReasonOf extracts the Reason from err, or 0 when err is not a
// validation failure.
func ReasonOf(err error) Reason {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return 0
}

func fail(r Reason) error { return &ValidationError{Reason: r} }
