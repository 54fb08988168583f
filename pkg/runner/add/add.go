package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
	"tableflip.dev/voyage/pkg/trip"
)

// Trip creates a trip; blank fields pick up defaults.
type Trip struct {
	Name        string
	Destination string
	Start       string
	End         string
	Color       string

	Service *app.Service
}

func (n *Trip) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	d := trip.Draft{Name: n.Name, Destination: n.Destination}
	var err error
	if n.Start != "" {
		if d.StartDate, err = trip.ParseDate(n.Start); err != nil {
			return fmt.Errorf("bad start date %q: %w", n.Start, err)
		}
	}
	if n.End != "" {
		if d.EndDate, err = trip.ParseDate(n.End); err != nil {
			return fmt.Errorf("bad end date %q: %w", n.End, err)
		}
	}
	if d.Color, err = trip.ParseColor(n.Color); err != nil {
		return err
	}
	if !d.StartDate.IsZero() && !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate.Time) {
		return errors.New("end date is before start date")
	}
	// A fully blank draft asks for the quick-add defaults; naming either
	// field means naming both.
	if d.Name != "" || d.Destination != "" {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	created, err := n.Service.AddTrip(ctx, d)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(created.Color.Sprint(created.Name))
	pp.Trips(n.Service.State().Trips...)
	return nil
}

// Day appends a day to a trip.
type Day struct {
	Trip string
	Name string
	Date string

	Service *app.Service
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	t, err := app.ResolveTrip(n.Service.State(), n.Trip)
	if err != nil {
		return fmt.Errorf("no trip matching %q", n.Trip)
	}

	d := trip.DayDraft{Name: n.Name}
	if n.Date != "" {
		if d.Date, err = trip.ParseDate(n.Date); err != nil {
			return fmt.Errorf("bad date %q: %w", n.Date, err)
		}
	}

	if _, err := n.Service.AddDay(ctx, t.ID, d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trip(n.Service.State().Trip(t.ID))
	return nil
}

// Activity appends an activity to a day.
type Activity struct {
	Trip        string
	Day         string
	Title       string
	Time        string
	Description string

	Service *app.Service
}

func (n *Activity) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
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

	draft := trip.ActivityDraft{Title: n.Title, Time: n.Time, Description: n.Description}
	if _, err := n.Service.AddActivity(ctx, t.ID, d.ID, draft); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if fresh := n.Service.State().Trip(t.ID); fresh != nil {
		pp.Day(fresh.Day(d.ID))
	}
	return nil
}
