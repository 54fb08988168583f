package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	io := &options.IDOptions{}
	calendar := false
	year := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show trips, or one trip's itinerary",
		Example: `
voyage get
voyage get --trip "Paris Adventure"
voyage get --trip paris --day "Day 2"
voyage get --calendar
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				ShowID:   io.ShowID,
				Trip:     to.Trip,
				Day:      to.Day,
				Calendar: calendar,
				Year:     year,
				Service:  svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("trip", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tripCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddDayArg(cmd, to)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Show trips on a month calendar.")
	cmd.Flags().BoolVar(&year, "year", false, "With --calendar, show the whole year.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
