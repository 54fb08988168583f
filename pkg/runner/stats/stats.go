package stats

import (
	"context"
	"errors"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
)

// Stats prints the dashboard aggregates.
type Stats struct {
	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report stats, no service")
	}

	st, err := n.Service.Stats(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Dashboard")
	pp.Stats(st)
	return nil
}
