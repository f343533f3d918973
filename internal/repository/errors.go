// Package repository holds the in-memory show registry and ticket
// ledger for one booking session.  These sentinel values allow higher
// layers such as the command parser to distinguish between different
// lookup failures without inspecting message text.
package repository

import "errors"

// ErrShowNotFound indicates that no show is registered under the number.
var ErrShowNotFound = errors.New("show not found")

// ErrShowExists is returned when registering a show number that is
// already taken.  Show numbers are never reused within a session.
var ErrShowExists = errors.New("show already exists")

// ErrTicketNotFound indicates that no live ticket carries the number.
// Cancelled tickets are removed from the ledger and report this too.
var ErrTicketNotFound = errors.New("ticket not found")
