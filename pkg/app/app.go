package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/store"
	"tableflip.dev/voyage/pkg/trip"
)

// Service provides high-level trip operations for the CLI and the TUI. Every
// mutation applies to the in-memory session first so the UI never waits on a
// write, then commits to the backend; a rejected commit rolls the session
// back to its pre-mutation snapshot.
type Service struct {
	Session *planner.Session
	Backend Backend
}

var errNotConfigured = errors.New("app: no backend configured")

func (s *Service) ready() error {
	if s == nil || s.Session == nil || s.Backend == nil {
		return errNotConfigured
	}
	return nil
}

// Refresh pulls the backend's trip collection into the session.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	trips, err := s.Backend.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.Session.Replace(trips)
	return nil
}

// Bootstrap refreshes and, on a brand new local store, seeds the sample trips
// so first run is not an empty screen. Authoritative backends are never
// seeded; the server owns its data.
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.Backend.Authoritative() {
		return nil
	}
	if len(s.Session.Snapshot().Trips) > 0 {
		return nil
	}
	samples := planner.SampleTrips()
	for _, t := range samples {
		if err := s.Backend.Create(ctx, t); err != nil {
			return fmt.Errorf("app: seed sample trips: %w", err)
		}
	}
	s.Session.Replace(samples)
	return nil
}

// State returns a consistent snapshot of the session.
func (s *Service) State() planner.State {
	if s == nil || s.Session == nil {
		return planner.State{}
	}
	return s.Session.Snapshot()
}

// AddTrip creates a trip, blank draft fields filled with defaults.
func (s *Service) AddTrip(ctx context.Context, d trip.Draft) (*trip.Trip, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	snap := s.Session.Snapshot()
	created := s.Session.AddTrip(d)
	if err := s.Backend.Create(ctx, created); err != nil {
		s.Session.Restore(snap)
		return nil, err
	}
	return created, s.resync(ctx)
}

// EditTrip applies a typed patch. An empty patch is a no-op.
func (s *Service) EditTrip(ctx context.Context, id string, p trip.TripPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	if p.IsZero() {
		return nil
	}
	snap := s.Session.Snapshot()
	if err := s.Session.EditTrip(id, p); err != nil {
		return err
	}
	if err := s.Backend.Update(ctx, id, p); err != nil {
		s.Session.Restore(snap)
		return err
	}
	return s.resync(ctx)
}

// DeleteTrip removes the trip and everything under it. Confirmation is the
// caller's job.
func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.DeleteTrip(id); err != nil {
		return err
	}
	if err := s.Backend.Remove(ctx, id); err != nil {
		s.Session.Restore(snap)
		return err
	}
	// Deleting the active trip hands the flag to the first survivor; that
	// flip happened only in the session and must reach the store too.
	if err := s.mirror(); err != nil {
		return err
	}
	return s.resync(ctx)
}

// ActivateTrip makes the trip the single active one.
func (s *Service) ActivateTrip(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.ActivateTrip(id); err != nil {
		return err
	}
	if err := s.Backend.SetActive(ctx, id); err != nil {
		s.Session.Restore(snap)
		return err
	}
	return s.resync(ctx)
}

// AddDay appends a day to the trip.
func (s *Service) AddDay(ctx context.Context, tripID string, d trip.DayDraft) (*trip.Day, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	snap := s.Session.Snapshot()
	day, err := s.Session.AddDay(tripID, d)
	if err != nil {
		return nil, err
	}
	if err := s.commitDays(ctx, snap, tripID); err != nil {
		return nil, err
	}
	return day, nil
}

// EditDay applies a typed patch to the day.
func (s *Service) EditDay(ctx context.Context, tripID, dayID string, p trip.DayPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	if p.IsZero() {
		return nil
	}
	snap := s.Session.Snapshot()
	if err := s.Session.EditDay(tripID, dayID, p); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// DeleteDay removes the day and its activities.
func (s *Service) DeleteDay(ctx context.Context, tripID, dayID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.DeleteDay(tripID, dayID); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// AddActivity appends an activity to the day.
func (s *Service) AddActivity(ctx context.Context, tripID, dayID string, d trip.ActivityDraft) (*trip.Activity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	snap := s.Session.Snapshot()
	a, err := s.Session.AddActivity(tripID, dayID, d)
	if err != nil {
		return nil, err
	}
	if err := s.commitDays(ctx, snap, tripID); err != nil {
		return nil, err
	}
	return a, nil
}

// EditActivity applies a typed patch to the activity.
func (s *Service) EditActivity(ctx context.Context, tripID, dayID, activityID string, p trip.ActivityPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	if p.IsZero() {
		return nil
	}
	snap := s.Session.Snapshot()
	if err := s.Session.EditActivity(tripID, dayID, activityID, p); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// DeleteActivity removes the activity.
func (s *Service) DeleteActivity(ctx context.Context, tripID, dayID, activityID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.DeleteActivity(tripID, dayID, activityID); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// ReorderActivities moves one activity so it lands where the target sat.
func (s *Service) ReorderActivities(ctx context.Context, tripID, dayID, movedID, targetID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.ReorderActivities(tripID, dayID, movedID, targetID); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// MoveActivity shifts the activity one position up or down.
func (s *Service) MoveActivity(ctx context.Context, tripID, dayID, activityID string, delta int) error {
	if err := s.ready(); err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if err := s.Session.MoveActivity(tripID, dayID, activityID, delta); err != nil {
		return err
	}
	return s.commitDays(ctx, snap, tripID)
}

// Stats reports the dashboard aggregates, preferring the backend's numbers.
func (s *Service) Stats(ctx context.Context) (planner.Stats, error) {
	if err := s.ready(); err != nil {
		return planner.Stats{}, err
	}
	if s.Backend.Authoritative() {
		return s.Backend.Stats(ctx)
	}
	return s.Session.Stats(), nil
}

// commitDays pushes the trip's post-mutation day tree, rolling the session
// back to snap when the backend refuses it.
func (s *Service) commitDays(ctx context.Context, snap planner.State, tripID string) error {
	t := s.Session.Snapshot().Trip(tripID)
	if t == nil {
		s.Session.Restore(snap)
		return planner.ErrNotFound
	}
	if err := s.Backend.PushDays(ctx, tripID, t.Days); err != nil {
		s.Session.Restore(snap)
		return err
	}
	return s.resync(ctx)
}

// Watch streams backend change notifications so a long-lived UI can refresh
// when another process edits the store. Backends without change notification
// return a nil channel.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	w, ok := s.Backend.(Watcher)
	if !ok {
		return nil, nil
	}
	return w.Watch(ctx)
}

// mirror writes the session's collection back to a non-authoritative backend
// after a change whose side effects span trips.
func (s *Service) mirror() error {
	if s.Backend.Authoritative() {
		return nil
	}
	r, ok := s.Backend.(Replacer)
	if !ok {
		return nil
	}
	return r.ReplaceAll(s.Session.Snapshot().Trips)
}

// resync re-fetches after a committed write when the backend may have
// rewritten what it was sent, e.g. server-assigned ids.
func (s *Service) resync(ctx context.Context) error {
	if !s.Backend.Authoritative() {
		return nil
	}
	trips, err := s.Backend.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("app: write committed but refresh failed: %w", err)
	}
	s.Session.Replace(trips)
	return nil
}
