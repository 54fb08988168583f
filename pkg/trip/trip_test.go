package trip

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		ok    bool
	}{
		{"complete", Draft{Name: "Test", Destination: "Lisbon, Portugal"}, true},
		{"missing destination", Draft{Name: "Test"}, false},
		{"missing name", Draft{Destination: "Lisbon, Portugal"}, false},
		{"whitespace destination", Draft{Name: "Test", Destination: "   "}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
			}
		})
	}
}

func TestDraftValidateDateOrder(t *testing.T) {
	start, _ := ParseDate("2025-06-13")
	end, _ := ParseDate("2025-06-10")
	d := Draft{Name: "Test", Destination: "Paris, France", StartDate: start, EndDate: end}
	if err := d.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestCountry(t *testing.T) {
	tests := []struct {
		destination string
		want        string
	}{
		{"Paris, France", "France"},
		{"Tokyo, Japan", "Japan"},
		{"Antarctica", "Antarctica"},
		{"Ushuaia, Tierra del Fuego, Argentina", "Argentina"},
		{"Oslo, ", "Oslo,"},
	}
	for _, tc := range tests {
		tr := &Trip{Destination: tc.destination}
		if got := tr.Country(); got != tc.want {
			t.Fatalf("Country(%q) = %q, want %q", tc.destination, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	start, _ := ParseDate("2025-06-10")
	end, _ := ParseDate("2025-06-13")
	tr := &Trip{StartDate: start, EndDate: end}
	if got := tr.Duration(); got != 4 {
		t.Fatalf("Duration() = %d, want 4", got)
	}
	if got := (&Trip{}).Duration(); got != 0 {
		t.Fatalf("zero dates Duration() = %d", got)
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)
	mk := func(v string) *Trip {
		d, err := ParseDate(v)
		if err != nil {
			t.Fatalf("parse %q: %v", v, err)
		}
		return &Trip{StartDate: d}
	}
	if got := mk("2025-06-04").Countdown(now); got != "3 days left" {
		t.Fatalf("future: %q", got)
	}
	if got := mk("2025-06-01").Countdown(now); got != "Today!" {
		t.Fatalf("today: %q", got)
	}
	if got := mk("2025-05-20").Countdown(now); got != "Past trip" {
		t.Fatalf("past: %q", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-07-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-07-15"` {
		t.Fatalf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v", back)
	}

	var zero Date
	b, _ = json.Marshal(zero)
	if string(b) != `""` {
		t.Fatalf("zero date = %s", b)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tr := &Trip{
		ID:   "t",
		Name: "Trip",
		Days: []*Day{{ID: "d", Name: "Day 1", Activities: []*Activity{{ID: "a", Title: "Walk"}}}},
	}
	cp := tr.Clone()
	cp.Days[0].Activities[0].Title = "Run"
	cp.Days[0].Name = "Changed"

	if tr.Days[0].Activities[0].Title != "Walk" || tr.Days[0].Name != "Day 1" {
		t.Fatalf("clone shares structure: %+v", tr.Days[0])
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor(""); err != nil || c != Blue {
		t.Fatalf("empty = %v, %v", c, err)
	}
	if c, err := ParseColor(" Teal "); err != nil || c != Teal {
		t.Fatalf("teal = %v, %v", c, err)
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}
