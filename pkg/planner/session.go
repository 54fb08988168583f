package planner

import (
	"sync"

	"tableflip.dev/voyage/pkg/trip"
)

// ChangeType classifies a session mutation.
type ChangeType int

const (
	ChangeCreate ChangeType = iota
	ChangeUpdate
	ChangeDelete
	ChangeReorder
	ChangeActivate
	ChangeReplace
	ChangeSelect
)

// Scope names the level of the tree a change touched.
type Scope int

const (
	ScopeTrip Scope = iota
	ScopeDay
	ScopeActivity
	ScopeSelection
)

// Event is emitted on the session channel after every mutation so a running
// UI can refresh without polling.
type Event struct {
	Change ChangeType
	Scope  Scope

	TripID     string
	DayID      string
	ActivityID string
}

// Session owns a State for the duration of the process. All mutations run to
// completion under one lock, snapshots are deep copies, and subscribers get
// typed events. It mirrors an informer-style cache: state lives here,
// consumers read consistent snapshots.
type Session struct {
	mu     sync.RWMutex
	state  State
	events chan Event
}

// NewSession starts a session from the given trips.
func NewSession(trips []*trip.Trip) *Session {
	return &Session{
		state:  Replace(State{}, trips),
		events: make(chan Event, 64),
	}
}

// Events exposes the change event channel.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Restore replaces the session state with a previously taken snapshot. Used
// to roll back an optimistic mutation the backend rejected.
func (s *Session) Restore(snapshot State) {
	s.mu.Lock()
	s.state = snapshot.Clone()
	s.mu.Unlock()
	s.emit(Event{Change: ChangeReplace, Scope: ScopeTrip})
}

// Replace swaps in an authoritative trip collection and recomputes the
// selection.
func (s *Session) Replace(trips []*trip.Trip) {
	s.mu.Lock()
	s.state = Replace(s.state, trips)
	s.mu.Unlock()
	s.emit(Event{Change: ChangeReplace, Scope: ScopeTrip})
}

// AddTrip applies the draft and returns the created trip.
func (s *Session) AddTrip(d trip.Draft) *trip.Trip {
	s.mu.Lock()
	next, t := AddTrip(s.state, d)
	s.state = next
	s.mu.Unlock()
	s.emit(Event{Change: ChangeCreate, Scope: ScopeTrip, TripID: t.ID})
	return t.Clone()
}

// EditTrip applies a typed patch to the trip.
func (s *Session) EditTrip(id string, p trip.TripPatch) error {
	return s.apply(Event{Change: ChangeUpdate, Scope: ScopeTrip, TripID: id}, func(st State) (State, error) {
		return EditTrip(st, id, p)
	})
}

// DeleteTrip removes the trip. Callers must have confirmed the delete.
func (s *Session) DeleteTrip(id string) error {
	return s.apply(Event{Change: ChangeDelete, Scope: ScopeTrip, TripID: id}, func(st State) (State, error) {
		return DeleteTrip(st, id)
	})
}

// ActivateTrip makes the trip the single active one.
func (s *Session) ActivateTrip(id string) error {
	return s.apply(Event{Change: ChangeActivate, Scope: ScopeTrip, TripID: id}, func(st State) (State, error) {
		return ActivateTrip(st, id)
	})
}

// SelectTrip moves the selection.
func (s *Session) SelectTrip(id string) error {
	return s.apply(Event{Change: ChangeSelect, Scope: ScopeSelection, TripID: id}, func(st State) (State, error) {
		return SelectTrip(st, id)
	})
}

// SelectDay moves the day selection.
func (s *Session) SelectDay(tripID, dayID string) error {
	return s.apply(Event{Change: ChangeSelect, Scope: ScopeSelection, TripID: tripID, DayID: dayID}, func(st State) (State, error) {
		return SelectDay(st, tripID, dayID)
	})
}

// AddDay appends a day to the trip and returns it.
func (s *Session) AddDay(tripID string, d trip.DayDraft) (*trip.Day, error) {
	s.mu.Lock()
	next, day, err := AddDay(s.state, tripID, d)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = next
	s.mu.Unlock()
	s.emit(Event{Change: ChangeCreate, Scope: ScopeDay, TripID: tripID, DayID: day.ID})
	return day.Clone(), nil
}

// EditDay applies a typed patch to the day.
func (s *Session) EditDay(tripID, dayID string, p trip.DayPatch) error {
	return s.apply(Event{Change: ChangeUpdate, Scope: ScopeDay, TripID: tripID, DayID: dayID}, func(st State) (State, error) {
		return EditDay(st, tripID, dayID, p)
	})
}

// DeleteDay removes the day and its activities.
func (s *Session) DeleteDay(tripID, dayID string) error {
	return s.apply(Event{Change: ChangeDelete, Scope: ScopeDay, TripID: tripID, DayID: dayID}, func(st State) (State, error) {
		return DeleteDay(st, tripID, dayID)
	})
}

// AddActivity appends an activity to the day and returns it.
func (s *Session) AddActivity(tripID, dayID string, d trip.ActivityDraft) (*trip.Activity, error) {
	s.mu.Lock()
	next, a, err := AddActivity(s.state, tripID, dayID, d)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = next
	s.mu.Unlock()
	s.emit(Event{Change: ChangeCreate, Scope: ScopeActivity, TripID: tripID, DayID: dayID, ActivityID: a.ID})
	return a.Clone(), nil
}

// EditActivity applies a typed patch to the activity.
func (s *Session) EditActivity(tripID, dayID, activityID string, p trip.ActivityPatch) error {
	return s.apply(Event{Change: ChangeUpdate, Scope: ScopeActivity, TripID: tripID, DayID: dayID, ActivityID: activityID}, func(st State) (State, error) {
		return EditActivity(st, tripID, dayID, activityID, p)
	})
}

// DeleteActivity removes the activity.
func (s *Session) DeleteActivity(tripID, dayID, activityID string) error {
	return s.apply(Event{Change: ChangeDelete, Scope: ScopeActivity, TripID: tripID, DayID: dayID, ActivityID: activityID}, func(st State) (State, error) {
		return DeleteActivity(st, tripID, dayID, activityID)
	})
}

// ReorderActivities commits a drop gesture: movedID lands where targetID sat.
func (s *Session) ReorderActivities(tripID, dayID, movedID, targetID string) error {
	return s.apply(Event{Change: ChangeReorder, Scope: ScopeActivity, TripID: tripID, DayID: dayID, ActivityID: movedID}, func(st State) (State, error) {
		return ReorderActivities(st, tripID, dayID, movedID, targetID)
	})
}

// MoveActivity shifts the activity one position up or down.
func (s *Session) MoveActivity(tripID, dayID, activityID string, delta int) error {
	return s.apply(Event{Change: ChangeReorder, Scope: ScopeActivity, TripID: tripID, DayID: dayID, ActivityID: activityID}, func(st State) (State, error) {
		return MoveActivity(st, tripID, dayID, activityID, delta)
	})
}

// Stats computes local dashboard aggregates.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.state)
}

func (s *Session) apply(ev Event, op func(State) (State, error)) error {
	s.mu.Lock()
	next, err := op(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()
	s.emit(ev)
	return nil
}

// emit never blocks; a slow or absent subscriber drops events rather than
// stalling mutations.
func (s *Session) emit(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}
