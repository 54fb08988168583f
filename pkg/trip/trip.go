package trip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Defaults applied when a draft leaves a field empty. They match the values
// the planner UI pre-fills.
const (
	DefaultName        = "New Trip"
	DefaultDestination = "Destination"
	DefaultDayPrefix   = "Day"
	DefaultTitle       = "New Activity"
	DefaultTime        = "12:00 PM"
	DefaultDescription = "Add description here"
)

var ErrValidation = errors.New("trip: validation failed")

// Trip is a single journey: an ordered list of days, each holding an ordered
// list of activities. At most one trip in a collection is Active.
type Trip struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	Color       Color  `json:"color,omitempty"`
	Active      bool   `json:"active"`
	Days        []*Day `json:"days"`

	// Created orders trips newest-first when loading from storage.
	Created Timestamp `json:"createdAt,omitempty"`
}

// Day is one calendar day of a trip. Activity order is display order.
type Day struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Date       Date        `json:"date,omitempty"`
	Activities []*Activity `json:"activities"`
}

// Activity is a single scheduled item within a day.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

// Draft carries user input for a new trip. Empty fields default.
type Draft struct {
	Name        string
	Destination string
	StartDate   Date
	EndDate     Date
	Color       Color
}

// DayDraft carries user input for a new day.
type DayDraft struct {
	Name string
	Date Date
}

// ActivityDraft carries user input for a new activity.
type ActivityDraft struct {
	Title       string
	Time        string
	Description string
}

// Validate checks a draft that came through a form-like surface: name and
// destination are required before the store may be called.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(d.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if !d.StartDate.IsZero() && !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate.Time) {
		return fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	return nil
}

// NewID returns a fresh unique identifier for trips, days, and activities.
func NewID() string {
	return uuid.NewString()
}

// Day returns the day with the given id, or nil.
func (t *Trip) Day(id string) *Day {
	for _, d := range t.Days {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Activity returns the activity with the given id, or nil.
func (d *Day) Activity(id string) *Activity {
	for _, a := range d.Activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Country extracts the country portion of the destination, taken as the text
// after the last comma ("Paris, France" -> "France"). Destinations without a
// comma count whole.
func (t *Trip) Country() string {
	dest := strings.TrimSpace(t.Destination)
	if idx := strings.LastIndex(dest, ","); idx >= 0 {
		if c := strings.TrimSpace(dest[idx+1:]); c != "" {
			return c
		}
	}
	return dest
}

// Clone returns a deep copy of the trip.
func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Days = make([]*Day, len(t.Days))
	for i, d := range t.Days {
		cp.Days[i] = d.Clone()
	}
	return &cp
}

// Clone returns a deep copy of the day.
func (d *Day) Clone() *Day {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Activities = make([]*Activity, len(d.Activities))
	for i, a := range d.Activities {
		cp.Activities[i] = a.Clone()
	}
	return &cp
}

// Clone returns a copy of the activity.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// CloneAll deep copies a trip slice.
func CloneAll(trips []*Trip) []*Trip {
	out := make([]*Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
