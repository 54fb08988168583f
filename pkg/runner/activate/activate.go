package activate

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
)

// Activate flags one trip as the current journey. Any other active trip is
// demoted in the same step.
type Activate struct {
	Trip string

	Service *app.Service
}

func (n *Activate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not activate, no service")
	}

	t, err := app.ResolveTrip(n.Service.State(), n.Trip)
	if err != nil {
		return fmt.Errorf("no trip matching %q", n.Trip)
	}

	if err := n.Service.ActivateTrip(ctx, t.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trips(n.Service.State().Trips...)
	return nil
}
