package commands

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/remote"
	"tableflip.dev/voyage/pkg/store"
)

// newService builds the trip service for the configured mode: a disk-backed
// store by default, or the itinerary server when one is configured. The
// session starts loaded so runners can resolve names immediately.
func newService(ctx context.Context) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var backend app.Backend
	if cfg.Mode() == store.ModeRemote {
		creds, err := remote.LoadCredentials(cfg.BasePath())
		if err != nil {
			return nil, nil, err
		}
		backend = app.NewRemoteBackend(remote.New(cfg.Server(), creds))
	} else {
		p, err := store.Load(cfg)
		if err != nil {
			return nil, nil, err
		}
		backend = app.NewLocalBackend(p)
	}

	svc := &app.Service{
		Session: planner.NewSession(nil),
		Backend: backend,
	}
	if err := svc.Bootstrap(ctx); err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			return nil, nil, errors.New("not logged in: run 'voyage login' first")
		}
		if remote.IsNetwork(err) {
			return nil, nil, fmt.Errorf("could not reach %s: %w", cfg.Server(), err)
		}
		return nil, nil, err
	}
	return svc, cfg, nil
}
