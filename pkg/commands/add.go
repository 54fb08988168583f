package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a trip, day, or activity",
		Example: `
voyage add trip Summer in Rome --destination "Rome, Italy"
voyage add day --trip rome
voyage add activity Colosseum tour --trip rome --day "Day 1" --time "10:00 AM"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTrip(cmd)
	addAddDay(cmd)
	addAddActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTrip(topLevel *cobra.Command) {
	var name, destination, start, end, colorTag string

	cmd := &cobra.Command{
		Use:   "trip [name]",
		Short: "Add a trip",
		Example: `
voyage add trip Summer in Rome --destination "Rome, Italy" --start 2026-07-01 --end 2026-07-10 --color teal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Trip{
				Name:        name,
				Destination: destination,
				Start:       start,
				End:         end,
				Color:       colorTag,
				Service:     svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Where the trip goes, e.g. \"Rome, Italy\".")
	cmd.Flags().StringVar(&start, "start", "", "Start date, 2006-01-02.")
	cmd.Flags().StringVar(&end, "end", "", "End date, 2006-01-02.")
	cmd.Flags().StringVar(&colorTag, "color", "", "Color tag: blue, green, purple, pink, amber, or teal.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddDay(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var name, date string

	cmd := &cobra.Command{
		Use:   "day [name]",
		Short: "Add a day to a trip",
		Example: `
voyage add day --trip rome
voyage add day Market morning --trip rome --date 2026-07-03
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Day{
				Trip:    to.Trip,
				Name:    name,
				Date:    date,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	cmd.Flags().StringVar(&date, "date", "", "Day date, 2006-01-02. Defaults to the trip start date.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddActivity(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var title, at, description string

	cmd := &cobra.Command{
		Use:   "activity [title]",
		Short: "Add an activity to a day",
		Example: `
voyage add activity Colosseum tour --trip rome --day "Day 1" --time "10:00 AM"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Activity{
				Trip:        to.Trip,
				Day:         to.Day,
				Title:       title,
				Time:        at,
				Description: description,
				Service:     svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddDayArg(cmd, to)
	cmd.Flags().StringVar(&at, "time", "", "Activity time, e.g. \"10:00 AM\".")
	cmd.Flags().StringVar(&description, "description", "", "A short note about the activity.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
