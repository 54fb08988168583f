package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a trip, day, or activity",
		Example: `
voyage edit trip --trip rome --name "Roman Holiday"
voyage edit day --trip rome --day "Day 1" --date 2026-07-02
voyage edit activity --trip rome --day "Day 1" --activity Colosseum --time "09:00 AM"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditTrip(cmd)
	addEditDay(cmd)
	addEditActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addEditTrip(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var name, destination, start, end, colorTag string

	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Edit trip fields",
		Example: `
voyage edit trip --trip rome --name "Roman Holiday" --color amber
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Trip{
				Trip:        to.Trip,
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

	options.AddTripArg(cmd, to)
	cmd.Flags().StringVar(&name, "name", "", "New trip name.")
	cmd.Flags().StringVar(&destination, "destination", "", "New destination.")
	cmd.Flags().StringVar(&start, "start", "", "New start date, 2006-01-02.")
	cmd.Flags().StringVar(&end, "end", "", "New end date, 2006-01-02.")
	cmd.Flags().StringVar(&colorTag, "color", "", "New color tag.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addEditDay(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var name, date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Edit day fields",
		Example: `
voyage edit day --trip rome --day "Day 1" --name "Arrival day"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Day{
				Trip:    to.Trip,
				Day:     to.Day,
				Name:    name,
				Date:    date,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddDayArg(cmd, to)
	cmd.Flags().StringVar(&name, "name", "", "New day name.")
	cmd.Flags().StringVar(&date, "date", "", "New day date, 2006-01-02.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addEditActivity(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var title, at, description string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Edit activity fields",
		Example: `
voyage edit activity --trip rome --day "Day 1" --activity Colosseum --time "09:00 AM"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Activity{
				Trip:        to.Trip,
				Day:         to.Day,
				Activity:    to.Activity,
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
	options.AddActivityArg(cmd, to)
	cmd.Flags().StringVar(&title, "title", "", "New activity title.")
	cmd.Flags().StringVar(&at, "time", "", "New activity time.")
	cmd.Flags().StringVar(&description, "description", "", "New description.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
