package commands

import (
	"context"

	"github.com/spf13/cobra"

	plannerui "tableflip.dev/voyage/pkg/tui/planner"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based itinerary planner",
		Example: `
voyage ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(context.Background())
			if err != nil {
				return err
			}
			return plannerui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
