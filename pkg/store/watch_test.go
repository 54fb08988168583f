package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/voyage/pkg/trip"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Server() string {
	return ""
}

func (t testConfig) Mode() Mode {
	return ModeLocal
}

func TestPersistenceWatchEmitsTripChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	tr := &trip.Trip{ID: "watched", Name: "Lisbon Weekend", Destination: "Lisbon, Portugal"}
	if err := p.Store(tr); err != nil {
		t.Fatalf("store trip: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTripsInvalidated {
				return
			}
			if evt.Type == EventTripChanged {
				if evt.Trip != "watched" {
					t.Fatalf("expected trip 'watched', got %q", evt.Trip)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for trip change event")
		}
	}
}
