package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/activate"
)

func addActivate(topLevel *cobra.Command) {
	var query string

	cmd := &cobra.Command{
		Use:   "activate [trip]",
		Short: "Mark a trip as the active one",
		Example: `
voyage activate rome
voyage activate "Paris Adventure"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := newService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := activate.Activate{
				Trip:    query,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
