package planner

import (
	"testing"

	"tableflip.dev/voyage/pkg/trip"
)

func TestSessionSnapshotIsolation(t *testing.T) {
	s := NewSession(SampleTrips())
	snap := s.Snapshot()
	snap.Trips[0].Name = "mutated"

	if got := s.Snapshot().Trips[0].Name; got != "Paris Adventure" {
		t.Fatalf("snapshot shares state: %q", got)
	}
}

func TestSessionRestoreRollsBack(t *testing.T) {
	s := NewSession(SampleTrips())
	before := s.Snapshot()

	created := s.AddTrip(trip.Draft{Name: "Doomed", Destination: "Nowhere"})
	if s.Snapshot().Trip(created.ID) == nil {
		t.Fatalf("optimistic add missing")
	}

	s.Restore(before)
	after := s.Snapshot()
	if after.Trip(created.ID) != nil {
		t.Fatalf("rollback kept the trip")
	}
	if len(after.Trips) != len(before.Trips) {
		t.Fatalf("trip count %d, want %d", len(after.Trips), len(before.Trips))
	}
}

func TestSessionEmitsEvents(t *testing.T) {
	s := NewSession(SampleTrips())
	created := s.AddTrip(trip.Draft{Name: "Rome", Destination: "Rome, Italy"})

	select {
	case ev := <-s.Events():
		if ev.Change != ChangeCreate || ev.Scope != ScopeTrip || ev.TripID != created.ID {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatalf("no event emitted")
	}
}

func TestSessionReorderEvent(t *testing.T) {
	s := NewSession(SampleTrips())
	if err := s.ReorderActivities("trip-1", "day-2", "activity-4", "activity-5"); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	snap := s.Snapshot()
	acts := snap.Trip("trip-1").Day("day-2").Activities
	if acts[0].ID != "activity-5" || acts[1].ID != "activity-4" {
		t.Fatalf("reorder not applied: %s, %s", acts[0].ID, acts[1].ID)
	}
}
