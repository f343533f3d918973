// Package command turns raw input lines into validated, typed commands.
// Each command carries only the fields its execution needs; anything
// that reaches the executor has already passed every business rule
// that can be checked up front.
package command

import "github.com/iliyamo/booking-a-show/internal/model"

// Kind names a command as typed by the user.
type Kind string

const (
	KindMode         Kind = "MODE"
	KindSetup        Kind = "SETUP"
	KindView         Kind = "VIEW"
	KindAvailability Kind = "AVAILABILITY"
	KindBook         Kind = "BOOK"
	KindCancel       Kind = "CANCEL"
	KindExit         Kind = "EXIT"
)

// Command is implemented by the closed set of command types below.
type Command interface {
	Kind() Kind
	sealed()
}

// Mode switches the active role.
type Mode struct {
	Target model.Mode
}

// Setup registers a new show.
type Setup struct {
	ShowNumber  int
	Rows        int
	SeatsPerRow int
	WindowMins  int
}

// View lists a show and its tickets.
type View struct {
	ShowNumber int
}

// Availability renders a show's seat grid.
type Availability struct {
	ShowNumber int
}

// Book reserves free seats on a show for a phone number.
type Book struct {
	ShowNumber int
	Phone      int
	Seats      []model.SeatCode
}

// Cancel releases a ticket when the phone matches.
type Cancel struct {
	TicketNumber int
	Phone        int
}

// Exit ends the session.
type Exit struct{}

func (Mode) Kind() Kind         { return KindMode }
func (Setup) Kind() Kind        { return KindSetup }
func (View) Kind() Kind         { return KindView }
func (Availability) Kind() Kind { return KindAvailability }
func (Book) Kind() Kind         { return KindBook }
func (Cancel) Kind() Kind       { return KindCancel }
func (Exit) Kind() Kind         { return KindExit }

func (Mode) sealed()         {}
func (Setup) sealed()        {}
func (View) sealed()         {}
func (Availability) sealed() {}
func (Book) sealed()         {}
func (Cancel) sealed()       {}
func (Exit) sealed()         {}
