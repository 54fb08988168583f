package plannerui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/store"
	"tableflip.dev/voyage/pkg/trip"
)

type memConfig struct{ path string }

func (c memConfig) BasePath() string { return c.path }
func (c memConfig) Server() string   { return "" }
func (c memConfig) Mode() store.Mode { return store.ModeLocal }

func testModel(t *testing.T, trips ...*trip.Trip) Model {
	t.Helper()
	p, err := store.Load(memConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, tr := range trips {
		if err := p.Store(tr); err != nil {
			t.Fatalf("store: %v", err)
		}
	}
	svc := &app.Service{
		Session: planner.NewSession(trip.CloneAll(trips)),
		Backend: app.NewLocalBackend(p),
	}
	m := New(svc)
	m.applyState(svc.State())
	return m
}

func sampleTrip() *trip.Trip {
	return &trip.Trip{
		ID:   "t1",
		Name: "Paris Adventure",
		Days: []*trip.Day{
			{ID: "d1", Name: "Day 1", Activities: []*trip.Activity{
				{ID: "a1", Title: "Flight", Time: "08:30 AM"},
				{ID: "a2", Title: "Check in", Time: "02:00 PM"},
				{ID: "a3", Title: "Dinner", Time: "07:00 PM"},
			}},
			{ID: "d2", Name: "Day 2"},
		},
	}
}

func TestApplyStatePopulatesPanes(t *testing.T) {
	m := testModel(t, sampleTrip())

	if got := len(m.tripList.Items()); got != 1 {
		t.Fatalf("trip items: %d", got)
	}
	if got := len(m.dayList.Items()); got != 2 {
		t.Fatalf("day items: %d", got)
	}
	if got := len(m.actList.Items()); got != 3 {
		t.Fatalf("activity items: %d", got)
	}
}

func TestGrabMoveShiftsActivityDown(t *testing.T) {
	m := testModel(t, sampleTrip())
	m.focus = paneActivities
	m.actList.Select(0)

	next, _ := m.Update(tea.KeyPressMsg{Code: 'J', Text: "J"})
	m = next.(Model)

	got := m.svc.State().Trip("t1").Days[0].Activities
	if got[0].ID != "a2" || got[1].ID != "a1" {
		t.Fatalf("order wrong after J: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	// The cursor should follow the moved activity.
	if a := m.selectedActivity(); a == nil || a.ID != "a1" {
		t.Fatalf("cursor lost the moved activity: %+v", a)
	}
}

func TestGrabMoveClampsAtTop(t *testing.T) {
	m := testModel(t, sampleTrip())
	m.focus = paneActivities
	m.actList.Select(0)

	next, _ := m.Update(tea.KeyPressMsg{Code: 'K', Text: "K"})
	m = next.(Model)

	got := m.svc.State().Trip("t1").Days[0].Activities
	if got[0].ID != "a1" {
		t.Fatalf("clamped move changed order: %s", got[0].ID)
	}
}

func TestDayCursorRebuildsActivities(t *testing.T) {
	m := testModel(t, sampleTrip())
	m.focus = paneDays

	next, _ := m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m = next.(Model)

	if d := m.selectedDay(); d == nil || d.ID != "d2" {
		t.Fatalf("day cursor wrong: %+v", d)
	}
	if got := len(m.actList.Items()); got != 0 {
		t.Fatalf("activities not rebuilt for empty day: %d", got)
	}
}

func TestIndexHelpersFallBackToZero(t *testing.T) {
	tr := sampleTrip()
	if got := indexOfDay(tr.Days, "ghost"); got != 0 {
		t.Fatalf("indexOfDay fallback: %d", got)
	}
	if got := indexOfActivity(tr.Days[0].Activities, "a3"); got != 2 {
		t.Fatalf("indexOfActivity: %d", got)
	}
}

func TestActivateFromTripsPane(t *testing.T) {
	m := testModel(t, sampleTrip())
	m.focus = paneTrips
	m.updateFocusHeaders()

	next, _ := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	m = next.(Model)

	if tr := m.svc.State().Trip("t1"); !tr.Active {
		t.Fatal("trip not activated")
	}
}

func TestNewArmsStoreWatch(t *testing.T) {
	m := testModel(t, sampleTrip())
	if m.watch == nil {
		t.Fatal("store watch not armed for a local backend")
	}
}

func pressDD(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	next, _ = next.(Model).Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	return next.(Model)
}

func TestDeleteTripWaitsForConfirm(t *testing.T) {
	m := pressDD(t, testModel(t, sampleTrip()))

	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	if m.svc.State().Trip("t1") == nil {
		t.Fatal("trip deleted before confirmation")
	}

	next, _ := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	m = next.(Model)
	if m.svc.State().Trip("t1") == nil {
		t.Fatal("cancelled delete removed the trip")
	}
	if m.mode != modeNormal {
		t.Fatalf("mode after cancel: %v", m.mode)
	}
}

func TestDeleteTripConfirmedRemoves(t *testing.T) {
	m := pressDD(t, testModel(t, sampleTrip()))

	next, _ := m.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	m = next.(Model)
	if m.svc.State().Trip("t1") != nil {
		t.Fatal("confirmed delete kept the trip")
	}
}

func TestDeleteActivitySkipsConfirm(t *testing.T) {
	m := testModel(t, sampleTrip())
	m.focus = paneActivities
	m.actList.Select(0)

	m = pressDD(t, m)
	if m.mode != modeNormal {
		t.Fatalf("activity delete should not prompt: %v", m.mode)
	}
	got := m.svc.State().Trip("t1").Days[0].Activities
	if len(got) != 2 || got[0].ID != "a2" {
		t.Fatalf("activity not deleted: %+v", got)
	}
}

func TestViewRendersWithoutData(t *testing.T) {
	svc := &app.Service{Session: planner.NewSession(nil)}
	m := New(svc)
	if out := m.View(); out == "" {
		t.Fatal("empty view")
	}
}
