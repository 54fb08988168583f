package trip

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a trip's color tag, one of a fixed palette.
type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
	Pink   Color = "pink"
	Amber  Color = "amber"
	Teal   Color = "teal"

	// DefaultColor is used when a draft does not pick one.
	DefaultColor = Blue
)

// Palette returns the supported color tags in display order.
func Palette() []Color {
	return []Color{Blue, Green, Purple, Pink, Amber, Teal}
}

// ParseColor maps user input to a palette color, defaulting empty input.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return DefaultColor, nil
	}
	for _, candidate := range Palette() {
		if candidate == c {
			return candidate, nil
		}
	}
	return DefaultColor, fmt.Errorf("trip: unknown color %q", raw)
}

// Sprint renders text in the tag's terminal color.
func (c Color) Sprint(text string) string {
	return c.printer().Sprint(text)
}

func (c Color) printer() *color.Color {
	switch c {
	case Green:
		return color.New(color.FgGreen)
	case Purple:
		return color.New(color.FgMagenta)
	case Pink:
		return color.New(color.FgHiMagenta)
	case Amber:
		return color.New(color.FgYellow)
	case Teal:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgBlue)
	}
}

func (c Color) String() string {
	return string(c)
}
