package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	var target string
	var up, down bool

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder an activity within its day",
		Long: `Reorder an activity within its day.

With --to, the activity is dropped on another activity and takes its slot,
the same as dragging it there. With --up or --down it shifts one position.`,
		Example: `
voyage move --trip rome --day "Day 1" --activity Dinner --to Flight
voyage move --trip rome --day "Day 1" --activity Dinner --up
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := move.Move{
				Trip:     to.Trip,
				Day:      to.Day,
				Activity: to.Activity,
				To:       target,
				Up:       up,
				Down:     down,
				Service:  svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddDayArg(cmd, to)
	options.AddActivityArg(cmd, to)
	cmd.Flags().StringVar(&target, "to", "", "Activity whose slot to take.")
	cmd.Flags().BoolVar(&up, "up", false, "Shift one position earlier.")
	cmd.Flags().BoolVar(&down, "down", false, "Shift one position later.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
