package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about trips and where they are stored.",
		Example: `
voyage info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, cfg, err := newService(ctx)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
