package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/voyage/pkg/commands/options"
	"tableflip.dev/voyage/pkg/runner/auth"
	"tableflip.dev/voyage/pkg/store"
)

func addLogin(topLevel *cobra.Command) {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the configured itinerary server",
		Example: `
voyage login --email ada@example.com
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Login{
				Email:    email,
				Password: password,
				Config:   cfg,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email. Prompted for when omitted.")
	cmd.Flags().StringVar(&password, "password", "", "Account password. Prompted for when omitted.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command) {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register [name]",
		Short: "Create an account on the configured itinerary server",
		Example: `
voyage register Ada Lovelace --email ada@example.com
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Register{
				Name:     name,
				Email:    email,
				Password: password,
				Config:   cfg,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email. Prompted for when omitted.")
	cmd.Flags().StringVar(&password, "password", "", "Account password. Prompted for when omitted.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		Example: `
voyage logout
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Logout{Config: cfg}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored session belongs to",
		Example: `
voyage whoami
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Whoami{Config: cfg}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
