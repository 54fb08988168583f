package trip

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses an ISO date like "2025-06-10".
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the current date truncated to day precision.
func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// Date is a calendar date serialised as "2006-01-02". The zero value
// marshals to the empty string.
type Date struct {
	time.Time
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

// Display renders the date the way the planner shows it, e.g. "Jun 10, 2025".
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// Duration reports the trip length in whole days, inclusive of both ends.
// Unset dates yield zero.
func (t *Trip) Duration() int {
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return 0
	}
	diff := t.EndDate.Sub(t.StartDate.Time)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) + 1
}

// Countdown describes how far away the trip start is from now, e.g.
// "3 days left", "Today!", or "Past trip".
func (t *Trip) Countdown(now time.Time) string {
	if t.StartDate.IsZero() {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.StartDate.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return "Past trip"
	case days == 0:
		return "Today!"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// Timestamp is an RFC3339 instant whose zero value marshals to "".
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
