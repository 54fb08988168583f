package add

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/store"
	"tableflip.dev/voyage/pkg/trip"
)

type diskConfig struct{ path string }

func (c diskConfig) BasePath() string { return c.path }
func (c diskConfig) Server() string   { return "" }
func (c diskConfig) Mode() store.Mode { return store.ModeLocal }

func testService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(diskConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return &app.Service{
		Session: planner.NewSession(nil),
		Backend: app.NewLocalBackend(p),
	}
}

func TestAddTripRequiresDestinationWithName(t *testing.T) {
	svc := testService(t)
	n := &Trip{Name: "Paris Adventure", Service: svc}

	err := n.Do(context.Background())
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if got := len(svc.State().Trips); got != 0 {
		t.Fatalf("trip stored despite validation failure: %d", got)
	}
}

func TestAddTripBlankDraftUsesDefaults(t *testing.T) {
	svc := testService(t)
	n := &Trip{Service: svc}

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	st := svc.State()
	if len(st.Trips) != 1 || st.Trips[0].Name != trip.DefaultName {
		t.Fatalf("defaults not applied: %+v", st.Trips)
	}
}

func TestAddTripFullDraft(t *testing.T) {
	svc := testService(t)
	n := &Trip{Name: "Paris Adventure", Destination: "Paris, France", Service: svc}

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := svc.State().Trips[0]
	if got.Name != "Paris Adventure" || got.Destination != "Paris, France" {
		t.Fatalf("trip fields wrong: %+v", got)
	}
}
