package blame

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type TimestampError struct {
	Text string
	Err  error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid blame timestamp '%v': %v", e.Text, e.Err)
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}

// ParseTimestamp parses YYYY-MM-DD HH:MM:SS in local time. The year takes exactly
// four digits and the other fields one or two, and together they must form a
// real calendar date and clock time.
func ParseTimestamp(text string) (time.Time, error) {
	return ParseTimestampIn(text, time.Local)
}

func ParseTimestampIn(text string, loc *time.Location) (time.Time, error) {
	m := timestampExpr.FindStringSubmatch(text)
	if m == nil || m[0] != text {
		return time.Time{}, &TimestampError{Text: text, Err: errors.New("expected YYYY-MM-DD HH:MM:SS")}
	}

	if len(m[1]) != 4 {
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("year %v must have 4 digits", m[1])}
	}

	var v [6]int
	for i := range v {
		if i > 0 && len(m[i+1]) > 2 {
			return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("field %v has more than 2 digits", m[i+1])}
		}

		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Time{}, &TimestampError{Text: text, Err: err}
		}
		v[i] = n
	}

	year, month, day, hour, minute, second := v[0], v[1], v[2], v[3], v[4], v[5]

	switch {
	case year < 1 || year > 9999:
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("year %v out of range", year)}
	case month < 1 || month > 12:
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("month %v out of range", month)}
	case day < 1 || day > daysIn(time.Month(month), year):
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("day %v out of range", day)}
	case hour > 23:
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("hour %v out of range", hour)}
	case minute > 59:
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("minute %v out of range", minute)}
	case second > 59:
		return time.Time{}, &TimestampError{Text: text, Err: errors.Errorf("second %v out of range", second)}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
