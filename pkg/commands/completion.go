package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(voyage completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(voyage completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// tripCompletions offers local trip names matching the typed prefix. Remote
// mode skips completions rather than blocking the shell on the network.
func tripCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil || cfg.Mode() != store.ModeLocal {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	var names []string
	for _, t := range p.List(context.Background()) {
		if strings.HasPrefix(strings.ToLower(t.Name), strings.ToLower(toComplete)) {
			names = append(names, t.Name)
		}
	}
	return names
}
