package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var Epoch = time.Unix(0, 0)

// TimeWindow is the half open interval [Start, End). A zero End means no upper
// bound.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// DefaultTimeWindow is [epoch, +inf).
func DefaultTimeWindow() TimeWindow {
	return TimeWindow{Start: Epoch}
}

// ParseTimeWindow parses YYYY-MM-DD dates in local time. Empty strings keep the
// default bounds.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	result := DefaultTimeWindow()

	if start != "" {
		t, err := time.ParseInLocation(DateLayout, start, time.Local)
		if err != nil {
			return TimeWindow{}, fmt.Errorf("invalid start time '%v': %w", start, err)
		}
		result.Start = t
	}

	if end != "" {
		t, err := time.ParseInLocation(DateLayout, end, time.Local)
		if err != nil {
			return TimeWindow{}, fmt.Errorf("invalid end time '%v': %w", end, err)
		}
		result.End = t
	}

	return result, nil
}

func (w TimeWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

func (w TimeWindow) String() string {
	start := w.Start.Format(DateLayout)

	end := "+inf"
	if !w.End.IsZero() {
		end = w.End.Format(DateLayout)
	}

	return fmt.Sprintf("[%v, %v)", start, end)
}
