package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/trip"
)

// PrettyPrint renders trips, days, and activities for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, t.Sprint(title))
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = fmt.Fprint(color.Output, t.Sprint(title))
	if count == 1 {
		_, _ = fmt.Fprintln(color.Output, c.Sprintf(" - %d %s", count, noun))
	} else {
		_, _ = fmt.Fprintln(color.Output, c.Sprintf(" - %d %ss", count, noun))
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = fmt.Fprint(color.Output, f.Sprint(" none\n\n"))
}

// Trips renders the trip list, newest first, active trip marked.
func (pp *PrettyPrint) Trips(trips ...*trip.Trip) {
	if len(trips) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint(""), bold.Sprint("Name"), bold.Sprint("Destination"), bold.Sprint("Dates"), bold.Sprint("Countdown"))
	} else {
		tbl.AddRow(bold.Sprint(""), bold.Sprint("Name"), bold.Sprint("Destination"), bold.Sprint("Dates"), bold.Sprint("Countdown"))
	}
	now := time.Now()
	for _, t := range trips {
		marker := " "
		if t.Active {
			marker = t.Color.Sprint("●")
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, marker, t.Color.Sprint(t.Name), t.Destination, dateRange(t), t.Countdown(now))
		} else {
			tbl.AddRow(marker, t.Color.Sprint(t.Name), t.Destination, dateRange(t), t.Countdown(now))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Trip renders one trip with its full day and activity tree.
func (pp *PrettyPrint) Trip(t *trip.Trip) {
	if t == nil {
		pp.none()
		return
	}
	header := t.Name
	if t.Active {
		header += " ●"
	}
	pp.Title(t.Color.Sprint(header))
	faint := color.New(color.Faint)
	_, _ = fmt.Fprintf(color.Output, "%s\n", t.Destination)
	_, _ = fmt.Fprintln(color.Output, faint.Sprintf("%s  (%d days)", dateRange(t), t.Duration()))
	_, _ = fmt.Fprintln(color.Output, "")
	for _, d := range t.Days {
		pp.Day(d)
	}
	if len(t.Days) == 0 {
		pp.none()
	}
}

// Day renders a day header and its activities in order.
func (pp *PrettyPrint) Day(d *trip.Day) {
	if d == nil {
		pp.none()
		return
	}
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	label := d.Name
	if !d.Date.IsZero() {
		label = fmt.Sprintf("%s %s", b.Sprint(d.Name), f.Sprint(d.Date.Display()))
	} else {
		label = b.Sprint(label)
	}
	if pp.ShowID {
		label = f.Sprint(d.ID) + "  " + label
	}
	_, _ = fmt.Fprintln(color.Output, label)
	pp.Activities(d.Activities...)
}

// Activities renders an ordered activity list.
func (pp *PrettyPrint) Activities(activities ...*trip.Activity) {
	if len(activities) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	for _, a := range activities {
		if pp.ShowID {
			_, _ = fmt.Fprint(color.Output, y.Sprint(a.ID))
			if pad := len(spacing) - len(a.ID); pad > 0 {
				_, _ = fmt.Fprint(color.Output, strings.Repeat(" ", pad))
			}
		}
		line := fmt.Sprintf("  %s  %s", f.Sprint(a.Time), a.Title)
		if a.Description != "" && a.Description != trip.DefaultDescription {
			line += f.Sprintf("  (%s)", a.Description)
		}
		_, _ = fmt.Fprintln(color.Output, line)
	}
	_, _ = fmt.Fprintln(color.Output, "")
}

// Stats renders the dashboard aggregates.
func (pp *PrettyPrint) Stats(st planner.Stats) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Trips"), bold.Sprint("Active"), bold.Sprint("Countries"), bold.Sprint("Activities"))
	tbl.AddRow(st.Trips, st.Active, st.Countries, st.Activities)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func dateRange(t *trip.Trip) string {
	switch {
	case t.StartDate.IsZero() && t.EndDate.IsZero():
		return ""
	case t.EndDate.IsZero():
		return t.StartDate.Display()
	case t.StartDate.IsZero():
		return t.EndDate.Display()
	default:
		return fmt.Sprintf("%s - %s", t.StartDate.Display(), t.EndDate.Display())
	}
}
