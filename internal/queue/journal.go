package queue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultJournalPath is where journal lines are appended when no path
// is configured.
const DefaultJournalPath = "logs/booking.log"

// FormatJournalLine renders an event as a single human-friendly line,
// newline included.
func FormatJournalLine(ev TicketEvent) string {
	seats := "[]"
	if len(ev.SeatLabels) > 0 {
		seats = fmt.Sprintf("[%s]", strings.Join(ev.SeatLabels, ","))
	}
	line := fmt.Sprintf("[%s] %s | event_id=%s | ticket=%d | show=%d | phone=%d | seats=%s | window=%dm",
		ev.OccurredAt, describe(ev.Type), ev.EventID, ev.TicketNumber, ev.ShowNumber, ev.Phone, seats, ev.WindowMins)
	if ev.Type == TypeTicketCancelRejected {
		line += fmt.Sprintf(" | overage=%dm", ev.OverageMins)
	}
	return line + "\n"
}

func describe(typ string) string {
	switch typ {
	case TypeTicketBooked:
		return "Ticket booked"
	case TypeTicketCancelled:
		return "Ticket cancelled"
	case TypeTicketCancelRejected:
		return "Cancellation rejected"
	}
	return "Ticket event " + typ
}

// AppendJournal appends the event's journal line to path, creating the
// parent directory and the file as needed.
func AppendJournal(path string, ev TicketEvent) error {
	if path == "" {
		path = DefaultJournalPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatJournalLine(ev)); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}
