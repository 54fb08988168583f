package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/printers"
)

type Get struct {
	ShowID   bool
	Trip     string
	Day      string
	Calendar bool
	Year     bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	st := n.Service.State()
	fmt.Println("")

	if n.Calendar {
		if n.Year {
			pp.CalendarYear(time.Now(), st.Trips...)
		} else {
			pp.Calendar(time.Now(), st.Trips...)
		}
		return nil
	}

	if n.Trip != "" {
		t, err := app.ResolveTrip(st, n.Trip)
		if err != nil {
			return fmt.Errorf("no trip matching %q", n.Trip)
		}
		if n.Day != "" {
			d, err := app.ResolveDay(st, t, n.Day)
			if err != nil {
				return fmt.Errorf("no day matching %q in %s", n.Day, t.Name)
			}
			pp.Day(d)
			return nil
		}
		pp.Trip(t)
		return nil
	}

	pp.TitleWithCount("Trips", len(st.Trips), "trip")
	pp.Trips(st.Trips...)
	return nil
}
