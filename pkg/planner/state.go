// Package planner holds the itinerary tree and every structural mutation on
// it. Operations are pure: they take a State, return a new State, and leave
// the input untouched, so callers can snapshot and roll back freely. Side
// effects (persistence, network, confirmation prompts) live at the boundary.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/voyage/pkg/trip"
)

// ErrNotFound signals an operation referenced an id absent from the tree.
// The returned state is always the input state, unchanged.
var ErrNotFound = errors.New("planner: not found")

// State is the canonical in-memory tree plus transient selection.
type State struct {
	Trips []*trip.Trip

	// ActiveTripID and ActiveDayID are the current selection. ActiveDayID
	// always names a day of the selected trip, or is empty.
	ActiveTripID string
	ActiveDayID  string
}

// Clone deep copies the state.
func (s State) Clone() State {
	cp := s
	cp.Trips = trip.CloneAll(s.Trips)
	return cp
}

// Trip returns the trip with the given id, or nil.
func (s State) Trip(id string) *trip.Trip {
	for _, t := range s.Trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ActiveTrip returns the selected trip, or nil.
func (s State) ActiveTrip() *trip.Trip {
	return s.Trip(s.ActiveTripID)
}

// ActiveDay returns the selected day of the selected trip, or nil.
func (s State) ActiveDay() *trip.Day {
	t := s.ActiveTrip()
	if t == nil {
		return nil
	}
	return t.Day(s.ActiveDayID)
}

// selectTrip points the selection at the trip and resets the day selection
// to its first day, or clears it when the trip has none.
func (s *State) selectTrip(t *trip.Trip) {
	if t == nil {
		s.ActiveTripID = ""
		s.ActiveDayID = ""
		return
	}
	s.ActiveTripID = t.ID
	if len(t.Days) > 0 {
		s.ActiveDayID = t.Days[0].ID
	} else {
		s.ActiveDayID = ""
	}
}

// AddTrip constructs a trip from the draft, defaulting absent fields, and
// inserts it at the front of the collection. Other trips' active flags are
// untouched; the new trip becomes the selection.
func AddTrip(s State, d trip.Draft) (State, *trip.Trip) {
	next := s.Clone()

	t := &trip.Trip{
		ID:          trip.NewID(),
		Name:        d.Name,
		Destination: d.Destination,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Color:       d.Color,
		Active:      false,
		Days:        []*trip.Day{},
		Created:     trip.Timestamp{Time: trip.Today().Time},
	}
	if strings.TrimSpace(t.Name) == "" {
		t.Name = trip.DefaultName
	}
	if strings.TrimSpace(t.Destination) == "" {
		t.Destination = trip.DefaultDestination
	}
	if t.StartDate.IsZero() {
		t.StartDate = trip.Today()
	}
	if t.EndDate.IsZero() {
		t.EndDate = trip.Today()
	}
	if t.Color == "" {
		t.Color = trip.DefaultColor
	}

	next.Trips = append([]*trip.Trip{t}, next.Trips...)
	next.selectTrip(t)
	return next, t
}

// EditTrip shallow-merges the patch onto the trip with the given id.
func EditTrip(s State, id string, p trip.TripPatch) (State, error) {
	if s.Trip(id) == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	next := s.Clone()
	p.Apply(next.Trip(id))
	return next, nil
}

// DeleteTrip removes the trip. Deleting the selected trip hands the active
// flag and selection to the first remaining trip; deleting the last trip
// clears the selection entirely.
func DeleteTrip(s State, id string) (State, error) {
	if s.Trip(id) == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	next := s.Clone()

	kept := make([]*trip.Trip, 0, len(next.Trips)-1)
	for _, t := range next.Trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	next.Trips = kept

	if next.ActiveTripID == id {
		if len(next.Trips) > 0 {
			next.Trips[0].Active = true
			next.selectTrip(next.Trips[0])
		} else {
			next.selectTrip(nil)
		}
	}
	return next, nil
}

// ActivateTrip flags the trip active and every other trip inactive, and
// moves the selection to it. After the call exactly one trip is active, or
// zero when the collection is empty.
func ActivateTrip(s State, id string) (State, error) {
	if s.Trip(id) == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	next := s.Clone()
	for _, t := range next.Trips {
		t.Active = t.ID == id
	}
	next.selectTrip(next.Trip(id))
	return next, nil
}

// SelectTrip moves the selection without touching active flags.
func SelectTrip(s State, id string) (State, error) {
	t := s.Trip(id)
	if t == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	next := s.Clone()
	next.selectTrip(next.Trip(id))
	return next, nil
}

// AddDay appends a day to the trip. The name defaults to "Day N" where N is
// the new day count; the date defaults to the trip's start date. The new day
// becomes the selected day.
func AddDay(s State, tripID string, d trip.DayDraft) (State, *trip.Day, error) {
	if s.Trip(tripID) == nil {
		return s, nil, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	next := s.Clone()
	t := next.Trip(tripID)

	day := &trip.Day{
		ID:         trip.NewID(),
		Name:       d.Name,
		Date:       d.Date,
		Activities: []*trip.Activity{},
	}
	if strings.TrimSpace(day.Name) == "" {
		day.Name = fmt.Sprintf("%s %d", trip.DefaultDayPrefix, len(t.Days)+1)
	}
	if day.Date.IsZero() {
		day.Date = t.StartDate
	}

	t.Days = append(t.Days, day)
	next.ActiveTripID = t.ID
	next.ActiveDayID = day.ID
	return next, day, nil
}

// EditDay shallow-merges the patch onto the day.
func EditDay(s State, tripID, dayID string, p trip.DayPatch) (State, error) {
	if t := s.Trip(tripID); t == nil || t.Day(dayID) == nil {
		return s, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}
	next := s.Clone()
	p.Apply(next.Trip(tripID).Day(dayID))
	return next, nil
}

// DeleteDay removes the day and all its activities. Deleting the selected
// day selects the first remaining sibling, or clears the day selection.
func DeleteDay(s State, tripID, dayID string) (State, error) {
	if t := s.Trip(tripID); t == nil || t.Day(dayID) == nil {
		return s, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}
	next := s.Clone()
	t := next.Trip(tripID)

	kept := make([]*trip.Day, 0, len(t.Days)-1)
	for _, day := range t.Days {
		if day.ID != dayID {
			kept = append(kept, day)
		}
	}
	t.Days = kept

	if next.ActiveTripID == tripID && next.ActiveDayID == dayID {
		if len(t.Days) > 0 {
			next.ActiveDayID = t.Days[0].ID
		} else {
			next.ActiveDayID = ""
		}
	}
	return next, nil
}

// SelectDay moves the day selection within the trip.
func SelectDay(s State, tripID, dayID string) (State, error) {
	t := s.Trip(tripID)
	if t == nil || t.Day(dayID) == nil {
		return s, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}
	next := s.Clone()
	next.ActiveTripID = tripID
	next.ActiveDayID = dayID
	return next, nil
}

// AddActivity appends an activity to the day, defaulting absent fields.
func AddActivity(s State, tripID, dayID string, d trip.ActivityDraft) (State, *trip.Activity, error) {
	if t := s.Trip(tripID); t == nil || t.Day(dayID) == nil {
		return s, nil, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}
	next := s.Clone()
	day := next.Trip(tripID).Day(dayID)

	a := &trip.Activity{
		ID:          trip.NewID(),
		Title:       d.Title,
		Time:        d.Time,
		Description: d.Description,
	}
	if strings.TrimSpace(a.Title) == "" {
		a.Title = trip.DefaultTitle
	}
	if strings.TrimSpace(a.Time) == "" {
		a.Time = trip.DefaultTime
	}
	if strings.TrimSpace(a.Description) == "" {
		a.Description = trip.DefaultDescription
	}

	day.Activities = append(day.Activities, a)
	return next, a, nil
}

// EditActivity shallow-merges the patch onto the activity.
func EditActivity(s State, tripID, dayID, activityID string, p trip.ActivityPatch) (State, error) {
	t := s.Trip(tripID)
	if t == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	day := t.Day(dayID)
	if day == nil || day.Activity(activityID) == nil {
		return s, fmt.Errorf("%w: activity %s", ErrNotFound, activityID)
	}
	next := s.Clone()
	p.Apply(next.Trip(tripID).Day(dayID).Activity(activityID))
	return next, nil
}

// DeleteActivity removes the activity from the day.
func DeleteActivity(s State, tripID, dayID, activityID string) (State, error) {
	t := s.Trip(tripID)
	if t == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	day := t.Day(dayID)
	if day == nil || day.Activity(activityID) == nil {
		return s, fmt.Errorf("%w: activity %s", ErrNotFound, activityID)
	}
	next := s.Clone()
	nd := next.Trip(tripID).Day(dayID)

	kept := make([]*trip.Activity, 0, len(nd.Activities)-1)
	for _, a := range nd.Activities {
		if a.ID != activityID {
			kept = append(kept, a)
		}
	}
	nd.Activities = kept
	return next, nil
}

// Replace swaps in an authoritative trip collection wholesale and recomputes
// the selection: the trip flagged active wins, else the first trip, else
// nothing.
func Replace(s State, trips []*trip.Trip) State {
	next := State{Trips: trip.CloneAll(trips)}
	for _, t := range next.Trips {
		if t.Active {
			next.selectTrip(t)
			return next
		}
	}
	if len(next.Trips) > 0 {
		next.selectTrip(next.Trips[0])
	}
	return next
}
