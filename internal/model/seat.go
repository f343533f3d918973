package model

import (
	"strconv"
	"strings"
)

// MaxRows and MaxSeatsPerRow bound the seating grid of a show.  Rows are
// labelled with a single letter, so the alphabet caps the row count.
const (
	MaxRows        = 26
	MaxSeatsPerRow = 10
)

// SeatCode identifies one seat in a show's grid.  Row and Col are
// zero-based; the textual form uses a row letter followed by a 1-based
// column number (e.g. "D3").
//
// Fields:
//  Row – zero-based row index (A = 0).
//  Col – zero-based column index (1 = 0).
type SeatCode struct {
	Row int
	Col int
}

// String renders the seat as a row label followed by its 1-based column.
func (s SeatCode) String() string {
	return RowLabel(s.Row) + strconv.Itoa(s.Col+1)
}

// ParseSeatCode parses a seat code such as "d3" or "J10".  The first
// character must be an ASCII letter and the remainder a plain decimal
// number of at least one.  Bounds against a particular grid are not
// checked here; see Show.InBounds.
func ParseSeatCode(raw string) (SeatCode, bool) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 {
		return SeatCode{}, false
	}
	row, ok := RowIndex(s[:1])
	if !ok {
		return SeatCode{}, false
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return SeatCode{}, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return SeatCode{}, false
	}
	return SeatCode{Row: row, Col: n - 1}, true
}

// RowLabel converts a zero-based index to an alphabetical row label like A, B, AA
func RowLabel(i int) string { // begin function to compute row label
	if i < 0 { // negative indices are invalid
		return "" // return empty string for invalid index
	}
	res := []rune{} // accumulate runes for the label
	for {
		rem := i % 26                    // compute remainder in base 26
		res = append(res, rune('A'+rem)) // append current letter
		i = i/26 - 1                     // reduce i for next digit
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 { // reverse the runes to build the label
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// RowIndex converts a row label like A or aa into its zero-based index
func RowIndex(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label)) // normalize the label to upper case
	if s == "" {
		return -1, false
	}
	n := 0 // accumulator for numeric value
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' { // only ASCII A-Z are valid
			return -1, false
		}
		n = n*26 + int(ch-'A'+1) // accumulate base26 representation
	}
	return n - 1, true
}
