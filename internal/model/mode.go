package model

import "strings"

// Mode is the active role of the session.  It gates which commands are
// accepted.
type Mode int

const (
	ModeAdmin Mode = iota // default role; configures and inspects shows
	ModeBuyer             // books and cancels tickets
)

// String returns the upper-case role name used on the command line.
func (m Mode) String() string {
	if m == ModeBuyer {
		return "BUYER"
	}
	return "ADMIN"
}

// ParseMode accepts ADMIN or BUYER in any letter case.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToUpper(s) {
	case "ADMIN":
		return ModeAdmin, true
	case "BUYER":
		return ModeBuyer, true
	}
	return ModeAdmin, false
}
