package trip

// TripPatch is a partial trip update. Nil fields are left untouched; the
// merge is explicit per field rather than a blind map spread.
type TripPatch struct {
	Name        *string `json:"name,omitempty"`
	Destination *string `json:"destination,omitempty"`
	StartDate   *Date   `json:"startDate,omitempty"`
	EndDate     *Date   `json:"endDate,omitempty"`
	Color       *Color  `json:"color,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p TripPatch) IsZero() bool {
	return p.Name == nil && p.Destination == nil && p.StartDate == nil &&
		p.EndDate == nil && p.Color == nil
}

// Apply merges the patch onto the trip.
func (p TripPatch) Apply(t *Trip) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
}

// DayPatch is a partial day update.
type DayPatch struct {
	Name *string `json:"name,omitempty"`
	Date *Date   `json:"date,omitempty"`
}

func (p DayPatch) IsZero() bool {
	return p.Name == nil && p.Date == nil
}

// Apply merges the patch onto the day.
func (p DayPatch) Apply(d *Day) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
}

// ActivityPatch is a partial activity update.
type ActivityPatch struct {
	Title       *string `json:"title,omitempty"`
	Time        *string `json:"time,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ActivityPatch) IsZero() bool {
	return p.Title == nil && p.Time == nil && p.Description == nil
}

// Apply merges the patch onto the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
}

// String returns a pointer to s, a convenience for building patches.
func String(s string) *string { return &s }

// DatePtr returns a pointer to d.
func DatePtr(d Date) *Date { return &d }

// ColorPtr returns a pointer to c.
func ColorPtr(c Color) *Color { return &c }
