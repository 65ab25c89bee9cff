package helpers

import "time"

// DisplayDateLayout is the dd/mm/yyyy layout used in user-facing messages
const DisplayDateLayout = "02/01/2006"

// DifferenceInDays returns the number of full days between left and right,
// truncated toward zero. Positive when left is after right.
func DifferenceInDays(left, right time.Time) int {
	return int(left.Sub(right).Hours() / 24)
}

// FormatDisplayDate renders a date for a user-facing message
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
