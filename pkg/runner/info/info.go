package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/remote"
	"tableflip.dev/voyage/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("VOYAGE_CONFIG_PATH"); override != "" {
		fmt.Println("VOYAGE_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("VOYAGE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	fmt.Println("Config.mode: ", n.Config.Mode())
	if n.Config.Server() != "" {
		fmt.Println("Config.server: ", n.Config.Server())
		creds, err := remote.LoadCredentials(n.Config.BasePath())
		if err != nil {
			return err
		}
		if creds.Empty() {
			fmt.Println("Session: not logged in")
		} else {
			fmt.Println("Session: stored")
		}
	}

	if n.Service == nil {
		return fmt.Errorf("failed to create service")
	}

	st := n.Service.State()
	fmt.Printf("Trips:\n")
	for _, t := range st.Trips {
		marker := " "
		if t.Active {
			marker = "*"
		}
		fmt.Printf(" %s %s (%s, %d days)\n", marker, t.Name, t.Destination, len(t.Days))
	}
	if len(st.Trips) == 0 {
		fmt.Printf("  %s\n", "no trips")
	}

	return nil
}
