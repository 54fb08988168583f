package app

import (
	"context"

	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/remote"
	"tableflip.dev/voyage/pkg/store"
	"tableflip.dev/voyage/pkg/trip"
)

// Backend is where committed changes land. Local mode writes the disk store;
// remote mode calls the itinerary service. An authoritative backend may
// rewrite what it is sent, so callers re-fetch after every write.
type Backend interface {
	FetchAll(ctx context.Context) ([]*trip.Trip, error)
	Create(ctx context.Context, t *trip.Trip) error
	Update(ctx context.Context, id string, p trip.TripPatch) error
	PushDays(ctx context.Context, id string, days []*trip.Day) error
	Remove(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string) error
	Stats(ctx context.Context) (planner.Stats, error)
	Authoritative() bool
}

// Replacer is implemented by backends that can rewrite the stored
// collection wholesale. The service uses it to persist changes that span
// trips, like the active-flag handoff after a delete.
type Replacer interface {
	ReplaceAll(trips []*trip.Trip) error
}

// Watcher is implemented by backends whose storage can change underneath
// the process, like another command writing the same db.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

// NewLocalBackend commits changes to the disk store.
func NewLocalBackend(p store.Persistence) Backend {
	return &localBackend{p: p}
}

type localBackend struct {
	p store.Persistence
}

func (b *localBackend) FetchAll(ctx context.Context) ([]*trip.Trip, error) {
	return b.p.List(ctx), nil
}

func (b *localBackend) Create(_ context.Context, t *trip.Trip) error {
	return b.p.Store(t)
}

func (b *localBackend) Update(ctx context.Context, id string, p trip.TripPatch) error {
	t, err := b.p.Get(ctx, id)
	if err != nil {
		return err
	}
	p.Apply(t)
	return b.p.Store(t)
}

func (b *localBackend) PushDays(ctx context.Context, id string, days []*trip.Day) error {
	t, err := b.p.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Days = days
	return b.p.Store(t)
}

func (b *localBackend) Remove(_ context.Context, id string) error {
	return b.p.Delete(id)
}

// SetActive flips the active flag exclusively, same as the service does.
func (b *localBackend) SetActive(ctx context.Context, id string) error {
	found := false
	for _, t := range b.p.List(ctx) {
		want := t.ID == id
		if want {
			found = true
		}
		if t.Active == want {
			continue
		}
		t.Active = want
		if err := b.p.Store(t); err != nil {
			return err
		}
	}
	if !found {
		return store.ErrNotFound
	}
	return nil
}

func (b *localBackend) ReplaceAll(trips []*trip.Trip) error {
	return b.p.ReplaceAll(trips)
}

func (b *localBackend) Watch(ctx context.Context) (<-chan store.Event, error) {
	return b.p.Watch(ctx)
}

func (b *localBackend) Stats(ctx context.Context) (planner.Stats, error) {
	return planner.ComputeStats(planner.State{Trips: b.p.List(ctx)}), nil
}

func (b *localBackend) Authoritative() bool {
	return false
}

// NewRemoteBackend commits changes to the itinerary service.
func NewRemoteBackend(c *remote.Client) Backend {
	return &remoteBackend{c: c}
}

type remoteBackend struct {
	c *remote.Client
}

func (b *remoteBackend) FetchAll(ctx context.Context) ([]*trip.Trip, error) {
	return b.c.AllTrips(ctx)
}

// Create sends the draft fields only; the server assigns its own id and the
// follow-up fetch reconciles it.
func (b *remoteBackend) Create(ctx context.Context, t *trip.Trip) error {
	return b.c.CreateTrip(ctx, trip.Draft{
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Color:       t.Color,
	})
}

func (b *remoteBackend) Update(ctx context.Context, id string, p trip.TripPatch) error {
	return b.c.UpdateTrip(ctx, id, p)
}

func (b *remoteBackend) PushDays(ctx context.Context, id string, days []*trip.Day) error {
	return b.c.PushDays(ctx, id, days)
}

func (b *remoteBackend) Remove(ctx context.Context, id string) error {
	return b.c.DeleteTrip(ctx, id)
}

func (b *remoteBackend) SetActive(ctx context.Context, id string) error {
	return b.c.ActivateTrip(ctx, id)
}

func (b *remoteBackend) Stats(ctx context.Context) (planner.Stats, error) {
	return b.c.Stats(ctx)
}

func (b *remoteBackend) Authoritative() bool {
	return true
}
