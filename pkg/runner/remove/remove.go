package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
)

// Trip deletes a trip after confirmation. Yes skips the prompt.
type Trip struct {
	Trip string
	Yes  bool

	Service *app.Service
	In      io.Reader
}

func (n *Trip) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	t, err := app.ResolveTrip(n.Service.State(), n.Trip)
	if err != nil {
		return fmt.Errorf("no trip matching %q", n.Trip)
	}

	if !n.Yes {
		ok, err := confirm(n.In, fmt.Sprintf("Delete trip %q and all its days and activities?", t.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := n.Service.DeleteTrip(ctx, t.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trips(n.Service.State().Trips...)
	return nil
}

// Day deletes a day and everything scheduled on it.
type Day struct {
	Trip string
	Day  string
	Yes  bool

	Service *app.Service
	In      io.Reader
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
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

	if !n.Yes {
		ok, err := confirm(n.In, fmt.Sprintf("Delete %q from %q?", d.Name, t.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := n.Service.DeleteDay(ctx, t.ID, d.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trip(n.Service.State().Trip(t.ID))
	return nil
}

// Activity deletes a single activity. No prompt; it is a small loss.
type Activity struct {
	Trip     string
	Day      string
	Activity string

	Service *app.Service
}

func (n *Activity) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
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

	if err := n.Service.DeleteActivity(ctx, t.ID, d.ID, a.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if fresh := n.Service.State().Trip(t.ID); fresh != nil {
		pp.Day(fresh.Day(d.ID))
	}
	return nil
}

func confirm(in io.Reader, prompt string) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
