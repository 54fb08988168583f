// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TripOptions captures the tree-addressing flags: which trip, day, and
// activity a command operates on. Names and ids both work.
type TripOptions struct {
	Trip     string
	Day      string
	Activity string
}

// AddTripArg wires the trip selector. Empty falls back to the active trip.
func AddTripArg(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.Trip, "trip", "t", "",
		"Specify the trip by name or id. Defaults to the active trip.")
}

// AddDayArg wires the day selector. Empty falls back to the first day.
func AddDayArg(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Specify the day by name or id. Defaults to the first day.")
}

// AddActivityArg wires the activity selector.
func AddActivityArg(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.Activity, "activity", "a", "",
		"Specify the activity by title or id.")
}
