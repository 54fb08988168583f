package app

import (
	"strings"

	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/trip"
)

// ResolveTrip finds a trip by id or name, case-insensitive. An empty query
// resolves to the selected trip, falling back to the active one.
func ResolveTrip(st planner.State, query string) (*trip.Trip, error) {
	if query == "" {
		if t := st.ActiveTrip(); t != nil {
			return t, nil
		}
		for _, t := range st.Trips {
			if t.Active {
				return t, nil
			}
		}
		return nil, planner.ErrNotFound
	}
	for _, t := range st.Trips {
		if t.ID == query {
			return t, nil
		}
	}
	for _, t := range st.Trips {
		if strings.EqualFold(t.Name, query) {
			return t, nil
		}
	}
	return nil, planner.ErrNotFound
}

// ResolveDay finds a day by id or name within the trip. An empty query
// resolves to the selected day when the trip is selected, else the first day.
func ResolveDay(st planner.State, t *trip.Trip, query string) (*trip.Day, error) {
	if t == nil {
		return nil, planner.ErrNotFound
	}
	if query == "" {
		if st.ActiveTripID == t.ID {
			if d := st.ActiveDay(); d != nil {
				return d, nil
			}
		}
		if len(t.Days) > 0 {
			return t.Days[0], nil
		}
		return nil, planner.ErrNotFound
	}
	if d := t.Day(query); d != nil {
		return d, nil
	}
	for _, d := range t.Days {
		if strings.EqualFold(d.Name, query) {
			return d, nil
		}
	}
	return nil, planner.ErrNotFound
}

// ResolveActivity finds an activity by id or title within the day.
func ResolveActivity(d *trip.Day, query string) (*trip.Activity, error) {
	if d == nil || query == "" {
		return nil, planner.ErrNotFound
	}
	if a := d.Activity(query); a != nil {
		return a, nil
	}
	for _, a := range d.Activities {
		if strings.EqualFold(a.Title, query) {
			return a, nil
		}
	}
	return nil, planner.ErrNotFound
}
