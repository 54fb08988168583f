package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
	"tableflip.dev/voyage/pkg/trip"
)

// Trip updates named fields of a trip; unset flags leave fields alone.
type Trip struct {
	Trip        string
	Name        string
	Destination string
	Start       string
	End         string
	Color       string

	Service *app.Service
}

func (n *Trip) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	t, err := app.ResolveTrip(n.Service.State(), n.Trip)
	if err != nil {
		return fmt.Errorf("no trip matching %q", n.Trip)
	}

	var p trip.TripPatch
	if n.Name != "" {
		p.Name = trip.String(n.Name)
	}
	if n.Destination != "" {
		p.Destination = trip.String(n.Destination)
	}
	if n.Start != "" {
		d, err := trip.ParseDate(n.Start)
		if err != nil {
			return fmt.Errorf("bad start date %q: %w", n.Start, err)
		}
		p.StartDate = trip.DatePtr(d)
	}
	if n.End != "" {
		d, err := trip.ParseDate(n.End)
		if err != nil {
			return fmt.Errorf("bad end date %q: %w", n.End, err)
		}
		p.EndDate = trip.DatePtr(d)
	}
	if n.Color != "" {
		c, err := trip.ParseColor(n.Color)
		if err != nil {
			return err
		}
		p.Color = trip.ColorPtr(c)
	}
	if p.IsZero() {
		return errors.New("nothing to edit, pass at least one field flag")
	}

	if err := n.Service.EditTrip(ctx, t.ID, p); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trip(n.Service.State().Trip(t.ID))
	return nil
}

// Day updates named fields of a day.
type Day struct {
	Trip string
	Day  string
	Name string
	Date string

	Service *app.Service
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
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

	var p trip.DayPatch
	if n.Name != "" {
		p.Name = trip.String(n.Name)
	}
	if n.Date != "" {
		parsed, err := trip.ParseDate(n.Date)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", n.Date, err)
		}
		p.Date = trip.DatePtr(parsed)
	}
	if p.IsZero() {
		return errors.New("nothing to edit, pass at least one field flag")
	}

	if err := n.Service.EditDay(ctx, t.ID, d.ID, p); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if fresh := n.Service.State().Trip(t.ID); fresh != nil {
		pp.Day(fresh.Day(d.ID))
	}
	return nil
}

// Activity updates named fields of an activity.
type Activity struct {
	Trip        string
	Day         string
	Activity    string
	Title       string
	Time        string
	Description string

	Service *app.Service
}

func (n *Activity) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
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

	var p trip.ActivityPatch
	if n.Title != "" {
		p.Title = trip.String(n.Title)
	}
	if n.Time != "" {
		p.Time = trip.String(n.Time)
	}
	if n.Description != "" {
		p.Description = trip.String(n.Description)
	}
	if p.IsZero() {
		return errors.New("nothing to edit, pass at least one field flag")
	}

	if err := n.Service.EditActivity(ctx, t.ID, d.ID, a.ID, p); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if fresh := n.Service.State().Trip(t.ID); fresh != nil {
		pp.Day(fresh.Day(d.ID))
	}
	return nil
}
