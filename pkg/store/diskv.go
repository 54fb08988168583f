package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/voyage/pkg/trip"
)

// ErrNotFound is returned when a trip id has no stored document.
var ErrNotFound = errors.New("store: trip not found")

// Persistence is the local storage contract for trips. One document per trip,
// whole day/activity tree included.
type Persistence interface {
	List(ctx context.Context) []*trip.Trip
	Get(ctx context.Context, id string) (*trip.Trip, error)
	Store(t *trip.Trip) error
	Delete(id string) error
	ReplaceAll(trips []*trip.Trip) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*trip.Trip, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := trip.Trip{}
	if err := json.Unmarshal(val, &t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = keyToPathTransform(key).FileName
	}
	if t.Days == nil {
		t.Days = []*trip.Day{}
	}
	return &t, nil
}

func (p *persistence) List(ctx context.Context) []*trip.Trip {
	all := make([]*trip.Trip, 0)
	for key := range p.d.Keys(ctx.Done()) {
		t, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTrips(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*trip.Trip, error) {
	t, err := p.read(toKey(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return t, nil
}

func (p *persistence) Store(t *trip.Trip) error {
	if t == nil {
		return errors.New("store: nil trip")
	}
	if t.ID == "" {
		t.ID = trip.NewID()
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(t.ID), data)
}

func (p *persistence) Delete(id string) error {
	return p.d.Erase(toKey(id))
}

// ReplaceAll swaps the stored collection wholesale, used after a remote
// refresh hands back the authoritative list.
func (p *persistence) ReplaceAll(trips []*trip.Trip) error {
	keep := make(map[string]struct{}, len(trips))
	for _, t := range trips {
		if err := p.Store(t); err != nil {
			return err
		}
		keep[t.ID] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for key := range p.d.Keys(ctx.Done()) {
		id := keyToPathTransform(key).FileName
		if _, ok := keep[id]; !ok {
			if err := p.d.Erase(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortTrips orders newest first so a front-inserted trip keeps its place
// across reloads. Trips without a created stamp sort last, by id.
func sortTrips(trips []*trip.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		left := trips[i]
		right := trips[j]
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.After(rt)
		}
	})
}

const tripsBucket = "trips"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: strings.Join(parts[1:], "-"),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `trips-<id>`
func toKey(id string) string {
	return fmt.Sprintf("%s-%s", tripsBucket, id)
}
