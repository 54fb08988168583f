package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/voyage/pkg/remote"
	"tableflip.dev/voyage/pkg/store"
)

var errNoServer = errors.New("no server configured, set server in .voyage or VOYAGE_SERVER")

// Login exchanges an email and password for session tokens and stores them
// next to the local database.
type Login struct {
	Email    string
	Password string

	Config store.Config
	In     io.Reader
}

func (n *Login) Do(ctx context.Context) error {
	if n.Config == nil || n.Config.Server() == "" {
		return errNoServer
	}

	email, password, err := promptCredentials(n.In, n.Email, n.Password)
	if err != nil {
		return err
	}

	client := remote.New(n.Config.Server(), remote.Credentials{})
	creds, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := remote.SaveCredentials(n.Config.BasePath(), creds); err != nil {
		return fmt.Errorf("logged in but could not store session: %w", err)
	}

	user, err := client.Verify(ctx)
	if err != nil {
		fmt.Printf("logged in as %s\n", email)
		return nil
	}
	fmt.Printf("logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// Register creates an account on the configured server and logs in.
type Register struct {
	Name     string
	Email    string
	Password string

	Config store.Config
	In     io.Reader
}

func (n *Register) Do(ctx context.Context) error {
	if n.Config == nil || n.Config.Server() == "" {
		return errNoServer
	}
	if strings.TrimSpace(n.Name) == "" {
		return errors.New("name is required")
	}

	email, password, err := promptCredentials(n.In, n.Email, n.Password)
	if err != nil {
		return err
	}

	client := remote.New(n.Config.Server(), remote.Credentials{})
	creds, err := client.Register(ctx, n.Name, email, password)
	if err != nil {
		return err
	}
	if err := remote.SaveCredentials(n.Config.BasePath(), creds); err != nil {
		return fmt.Errorf("registered but could not store session: %w", err)
	}

	fmt.Printf("registered and logged in as %s\n", email)
	return nil
}

// Logout drops the stored session tokens. The server is not told; tokens
// simply age out there.
type Logout struct {
	Config store.Config
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not log out, no config")
	}
	if err := remote.ClearCredentials(n.Config.BasePath()); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

// Whoami verifies the stored session against the server and prints the
// profile it belongs to.
type Whoami struct {
	Config store.Config
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Config == nil || n.Config.Server() == "" {
		return errNoServer
	}

	creds, err := remote.LoadCredentials(n.Config.BasePath())
	if err != nil {
		return err
	}
	if creds.Empty() {
		fmt.Println("not logged in")
		return nil
	}

	client := remote.New(n.Config.Server(), creds)
	user, err := client.Verify(ctx)
	if errors.Is(err, remote.ErrUnauthorized) {
		fmt.Println("session expired, log in again")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func promptCredentials(in io.Reader, email, password string) (string, string, error) {
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)

	if strings.TrimSpace(email) == "" {
		fmt.Print("email: ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", "", err
		}
		email = strings.TrimSpace(line)
	}
	if strings.TrimSpace(email) == "" {
		return "", "", errors.New("email is required")
	}

	if password == "" {
		fmt.Print("password: ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", "", err
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return "", "", errors.New("password is required")
	}

	return email, password, nil
}
