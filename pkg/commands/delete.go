package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a trip, day, or activity",
		Example: `
voyage delete trip --trip rome
voyage delete day --trip rome --day "Day 3" --yes
voyage delete activity --trip rome --day "Day 1" --activity Colosseum
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteTrip(cmd)
	addDeleteDay(cmd)
	addDeleteActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addDeleteTrip(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Delete a trip and its whole itinerary",
		Example: `
voyage delete trip --trip rome
voyage delete trip --trip rome --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Trip{
				Trip:    to.Trip,
				Yes:     co.Yes,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddYesArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addDeleteDay(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Delete a day and everything scheduled on it",
		Example: `
voyage delete day --trip rome --day "Day 3"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Day{
				Trip:    to.Trip,
				Day:     to.Day,
				Yes:     co.Yes,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddDayArg(cmd, to)
	options.AddYesArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addDeleteActivity(topLevel *cobra.Command) {
	to := &options.TripOptions{}

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Delete a single activity",
		Example: `
voyage delete activity --trip rome --day "Day 1" --activity Colosseum
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Activity{
				Trip:     to.Trip,
				Day:      to.Day,
				Activity: to.Activity,
				Service:  svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddDayArg(cmd, to)
	options.AddActivityArg(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
