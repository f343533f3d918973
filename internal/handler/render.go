package handler

import (
	"strconv"
	"strings"

	"github.com/iliyamo/booking-a-show/internal/model"
)

// Success messages.  Booking and cancellation messages are suffixed with
// the ticket number; the cancellation failure with the overage in minutes.
const (
	MsgModeBuyer     = "-- Current Mode: Buyer ------------------------------------------------"
	MsgModeAdmin     = "-- Current Mode: Admin ------------------------------------------------"
	MsgSetup         = "-- Show added successfully"
	MsgBook          = "-- Ticket booked successfully, #"
	MsgCancelSuccess = "-- Ticket cancelled successfully, #"
	MsgCancelFailure = "-- Ticket cannot be cancelled, exceeded window period by (mins): "
	MsgOccupiedKey   = "** Occupied seats are indicated with XX"
)

// ModeBanner returns the banner announcing the given mode.
func ModeBanner(m model.Mode) string {
	if m == model.ModeBuyer {
		return MsgModeBuyer
	}
	return MsgModeAdmin
}

// RenderShow lists a show and its tickets in booking order, e.g.
//
//	-- List of Shows:
//	Show{showNum=100,
//		tickets=[
//			Ticket{ticketNum=1, phoneNum=61234567, seats=[D3, D4]}]}
func RenderShow(s *model.Show) string {
	var b strings.Builder
	b.WriteString("-- List of Shows: \nShow{showNum=")
	b.WriteString(strconv.Itoa(s.Number))
	b.WriteString(",\n\ttickets=[")
	for i, t := range s.Tickets() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderTicket(t))
	}
	b.WriteString("]}")
	return b.String()
}

func renderTicket(t *model.Ticket) string {
	return "\n\t\tTicket{ticketNum=" + strconv.Itoa(t.Number) +
		", phoneNum=" + strconv.Itoa(t.Phone) +
		", seats=[" + strings.Join(t.SeatLabels(), ", ") + "]}"
}

// RenderAvailability draws the seat grid: free seats by code, taken
// seats as XX, each cell followed by a space, then the legend.
func RenderAvailability(s *model.Show) string {
	var b strings.Builder
	b.WriteString("-- Available Seats for Show Number ")
	b.WriteString(strconv.Itoa(s.Number))
	b.WriteString(":\n")
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.SeatsPerRow; c++ {
			code := model.SeatCode{Row: r, Col: c}
			if s.IsOccupied(code) {
				b.WriteString("XX ")
			} else {
				b.WriteString(code.String())
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(MsgOccupiedKey)
	return b.String()
}
