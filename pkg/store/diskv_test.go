package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/voyage/pkg/trip"
)

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	p := testPersistence(t)
	start, _ := trip.ParseDate("2025-06-10")

	tr := &trip.Trip{
		ID:          "paris",
		Name:        "Paris Adventure",
		Destination: "Paris, France",
		StartDate:   start,
		Color:       trip.Blue,
		Active:      true,
		Days: []*trip.Day{
			{
				ID:   "d1",
				Name: "Day 1",
				Date: start,
				Activities: []*trip.Activity{
					{ID: "a1", Title: "Flight to Paris", Time: "08:30 AM", Description: "Air France, Terminal 2"},
				},
			},
		},
	}
	if err := p.Store(tr); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := p.Get(context.Background(), "paris")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != tr.Name || got.Destination != tr.Destination || !got.Active {
		t.Fatalf("trip fields lost: %+v", got)
	}
	if len(got.Days) != 1 || len(got.Days[0].Activities) != 1 {
		t.Fatalf("nested tree lost: %+v", got)
	}
	if a := got.Days[0].Activities[0]; a.Title != "Flight to Paris" || a.Time != "08:30 AM" {
		t.Fatalf("activity fields lost: %+v", a)
	}
	if got.StartDate.String() != "2025-06-10" {
		t.Fatalf("date lost: %q", got.StartDate)
	}
}

func TestGetMissing(t *testing.T) {
	p := testPersistence(t)
	if _, err := p.Get(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	p := testPersistence(t)
	older := &trip.Trip{ID: "older", Name: "Older", Created: trip.Timestamp{Time: time.Now().Add(-48 * time.Hour)}}
	newer := &trip.Trip{ID: "newer", Name: "Newer", Created: trip.Timestamp{Time: time.Now()}}
	for _, tr := range []*trip.Trip{older, newer} {
		if err := p.Store(tr); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	all := p.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("list length %d", len(all))
	}
	if all[0].ID != "newer" || all[1].ID != "older" {
		t.Fatalf("order wrong: %s, %s", all[0].ID, all[1].ID)
	}
}

func TestDeleteAndReplaceAll(t *testing.T) {
	p := testPersistence(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := p.Store(&trip.Trip{ID: id, Name: id}); err != nil {
			t.Fatalf("store %s: %v", id, err)
		}
	}

	if err := p.Delete("b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(p.List(context.Background())); got != 2 {
		t.Fatalf("after delete: %d trips", got)
	}

	if err := p.ReplaceAll([]*trip.Trip{{ID: "z", Name: "Zanzibar"}}); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	all := p.List(context.Background())
	if len(all) != 1 || all[0].ID != "z" {
		t.Fatalf("replace all wrong: %+v", all)
	}
}
