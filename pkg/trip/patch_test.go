package trip

import "testing"

func TestTripPatchApply(t *testing.T) {
	start, _ := ParseDate("2025-06-10")
	tr := &Trip{Name: "Paris Adventure", Destination: "Paris, France", StartDate: start, Color: Blue}

	p := TripPatch{Name: String("Paris Redux"), Color: ColorPtr(Amber)}
	p.Apply(tr)

	if tr.Name != "Paris Redux" || tr.Color != Amber {
		t.Fatalf("patch not applied: %+v", tr)
	}
	if tr.Destination != "Paris, France" || tr.StartDate.String() != "2025-06-10" {
		t.Fatalf("untouched fields changed: %+v", tr)
	}
}

func TestEmptyPatchesAreZero(t *testing.T) {
	if !(TripPatch{}).IsZero() || !(DayPatch{}).IsZero() || !(ActivityPatch{}).IsZero() {
		t.Fatalf("empty patches should be zero")
	}
	if (TripPatch{Name: String("x")}).IsZero() {
		t.Fatalf("non-empty patch reported zero")
	}
}

func TestActivityPatchApply(t *testing.T) {
	a := &Activity{Title: "Louvre Museum", Time: "09:00 AM", Description: "Guided tour"}
	(ActivityPatch{Time: String("10:30 AM")}).Apply(a)
	if a.Time != "10:30 AM" {
		t.Fatalf("time not patched: %+v", a)
	}
	if a.Title != "Louvre Museum" || a.Description != "Guided tour" {
		t.Fatalf("untouched fields changed: %+v", a)
	}
}
