package planner

import (
	"errors"
	"fmt"
	"testing"

	"tableflip.dev/voyage/pkg/trip"
)

func dayState(activityIDs ...string) State {
	acts := make([]*trip.Activity, 0, len(activityIDs))
	for i, id := range activityIDs {
		acts = append(acts, &trip.Activity{
			ID:          id,
			Title:       fmt.Sprintf("Activity %d", i+1),
			Time:        "09:00 AM",
			Description: "details",
		})
	}
	return State{
		Trips: []*trip.Trip{
			{
				ID:   "t1",
				Name: "Trip",
				Days: []*trip.Day{{ID: "d1", Name: "Day 1", Activities: acts}},
			},
		},
		ActiveTripID: "t1",
		ActiveDayID:  "d1",
	}
}

func ids(acts []*trip.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.ID
	}
	return out
}

func TestReorderMovesElementToTarget(t *testing.T) {
	tests := []struct {
		name   string
		moved  string
		target string
		want   []string
	}{
		{"forward", "a", "c", []string{"b", "c", "a", "d"}},
		{"backward", "d", "b", []string{"a", "d", "b", "c"}},
		{"to front", "c", "a", []string{"c", "a", "b", "d"}},
		{"to back", "a", "d", []string{"b", "c", "d", "a"}},
		{"adjacent swap", "b", "c", []string{"a", "c", "b", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := dayState("a", "b", "c", "d")
			next, err := ReorderActivities(s, "t1", "d1", tc.moved, tc.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := ids(next.Trip("t1").Day("d1").Activities)
			if len(got) != len(tc.want) {
				t.Fatalf("length changed: got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("order mismatch: got %v want %v", got, tc.want)
				}
			}
		})
	}
}

func TestReorderAllPositionPairs(t *testing.T) {
	const n = 5
	base := []string{"a1", "a2", "a3", "a4", "a5"}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			s := dayState(base...)
			next, err := ReorderActivities(s, "t1", "d1", base[i], base[j])
			if err != nil {
				t.Fatalf("(%d->%d): %v", i, j, err)
			}
			got := ids(next.Trip("t1").Day("d1").Activities)
			if len(got) != n {
				t.Fatalf("(%d->%d): length %d", i, j, len(got))
			}
			if got[j] != base[i] {
				t.Fatalf("(%d->%d): moved element at %d, got %v", i, j, j, got)
			}
			seen := map[string]bool{}
			for _, id := range got {
				if seen[id] {
					t.Fatalf("(%d->%d): duplicated id %s in %v", i, j, id, got)
				}
				seen[id] = true
			}
			// Remaining elements keep their relative order.
			rest := make([]string, 0, n-1)
			for _, id := range got {
				if id != base[i] {
					rest = append(rest, id)
				}
			}
			want := make([]string, 0, n-1)
			for _, id := range base {
				if id != base[i] {
					want = append(want, id)
				}
			}
			for k := range rest {
				if rest[k] != want[k] {
					t.Fatalf("(%d->%d): relative order broken: %v", i, j, got)
				}
			}
		}
	}
}

func TestReorderSameIDIsNoOp(t *testing.T) {
	s := dayState("a", "b", "c")
	next, err := ReorderActivities(s, "t1", "d1", "b", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(next.Trip("t1").Day("d1").Activities)
	for i, want := range []string{"a", "b", "c"} {
		if got[i] != want {
			t.Fatalf("sequence changed: %v", got)
		}
	}
}

func TestReorderUnknownIDSignalsNotFound(t *testing.T) {
	for _, pair := range [][2]string{{"missing", "b"}, {"a", "missing"}} {
		s := dayState("a", "b", "c")
		next, err := ReorderActivities(s, "t1", "d1", pair[0], pair[1])
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		got := ids(next.Trip("t1").Day("d1").Activities)
		for i, want := range []string{"a", "b", "c"} {
			if got[i] != want {
				t.Fatalf("sequence mutated on failure: %v", got)
			}
		}
	}
}

func TestReorderEmptyAndSingle(t *testing.T) {
	s := dayState()
	if _, err := ReorderActivities(s, "t1", "d1", "x", "x"); err != nil {
		t.Fatalf("empty sequence: %v", err)
	}

	s = dayState("only")
	next, err := ReorderActivities(s, "t1", "d1", "only", "only")
	if err != nil {
		t.Fatalf("single element: %v", err)
	}
	if got := ids(next.Trip("t1").Day("d1").Activities); len(got) != 1 || got[0] != "only" {
		t.Fatalf("single element changed: %v", got)
	}
}

func TestReorderLeavesFieldsAndInputAlone(t *testing.T) {
	s := dayState("a", "b", "c")
	orig := ids(s.Trip("t1").Day("d1").Activities)

	next, err := ReorderActivities(s, "t1", "d1", "a", "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Input state untouched.
	after := ids(s.Trip("t1").Day("d1").Activities)
	for i := range orig {
		if after[i] != orig[i] {
			t.Fatalf("input state mutated: %v", after)
		}
	}

	// Activity fields ride along unchanged.
	moved := next.Trip("t1").Day("d1").Activity("a")
	if moved.Title != "Activity 1" || moved.Time != "09:00 AM" || moved.Description != "details" {
		t.Fatalf("activity fields changed: %+v", moved)
	}
}

func TestReorderEiffelSeineScenario(t *testing.T) {
	s := State{
		Trips: []*trip.Trip{
			{
				ID:   "trip-1",
				Name: "Paris Adventure",
				Days: []*trip.Day{
					{
						ID:   "day-2",
						Name: "Day 2",
						Activities: []*trip.Activity{
							{ID: "activity-4", Title: "Visit Eiffel Tower", Time: "10:00 AM"},
							{ID: "activity-5", Title: "Seine River Cruise", Time: "03:00 PM"},
						},
					},
				},
			},
		},
	}
	next, err := ReorderActivities(s, "trip-1", "day-2", "activity-4", "activity-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	acts := next.Trip("trip-1").Day("day-2").Activities
	if acts[0].Title != "Seine River Cruise" || acts[1].Title != "Visit Eiffel Tower" {
		t.Fatalf("titles in wrong order: %q, %q", acts[0].Title, acts[1].Title)
	}
	if acts[0].ID != "activity-5" || acts[1].ID != "activity-4" {
		t.Fatalf("ids changed: %q, %q", acts[0].ID, acts[1].ID)
	}
	if acts[1].Time != "10:00 AM" {
		t.Fatalf("activity fields changed: %+v", acts[1])
	}
}

func TestMoveActivityClampsAtEnds(t *testing.T) {
	s := dayState("a", "b", "c")

	next, err := MoveActivity(s, "t1", "d1", "a", -1)
	if err != nil {
		t.Fatalf("move up at top: %v", err)
	}
	if got := ids(next.Trip("t1").Day("d1").Activities); got[0] != "a" {
		t.Fatalf("top element moved: %v", got)
	}

	next, err = MoveActivity(s, "t1", "d1", "b", 1)
	if err != nil {
		t.Fatalf("move down: %v", err)
	}
	if got := ids(next.Trip("t1").Day("d1").Activities); got[1] != "c" || got[2] != "b" {
		t.Fatalf("move down wrong: %v", got)
	}
}
