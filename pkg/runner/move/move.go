package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
)

// Move repositions an activity within its day. With To set the activity
// lands at that activity's slot, same as dragging it there; otherwise
// Up/Down shift it one position.
type Move struct {
	Trip     string
	Day      string
	Activity string

	To   string
	Up   bool
	Down bool

	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}

	st := n.Service.State()
	t, err := app.ResolveTrip(st, n.Trip)
	if err != nil {
		return fmt.Errorf("no trip matching %q", n.Trip)
	}
	d, err := app.ResolveDay(st, t, n.Day)
	if err != nil {
		return fmt.Errorf("no day matching %q in %s", n.Day, t.Name)
	}
	a, err := app.ResolveActivity(d, n.Activity)
	if err != nil {
		return fmt.Errorf("no activity matching %q in %s", n.Activity, d.Name)
	}

	switch {
	case n.To != "":
		target, err := app.ResolveActivity(d, n.To)
		if err != nil {
			return fmt.Errorf("no activity matching %q in %s", n.To, d.Name)
		}
		if err := n.Service.ReorderActivities(ctx, t.ID, d.ID, a.ID, target.ID); err != nil {
			return err
		}
	case n.Up:
		if err := n.Service.MoveActivity(ctx, t.ID, d.ID, a.ID, -1); err != nil {
			return err
		}
	case n.Down:
		if err := n.Service.MoveActivity(ctx, t.ID, d.ID, a.ID, +1); err != nil {
			return err
		}
	default:
		return errors.New("pass --to, --up, or --down")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if fresh := n.Service.State().Trip(t.ID); fresh != nil {
		pp.Day(fresh.Day(d.ID))
	}
	return nil
}
