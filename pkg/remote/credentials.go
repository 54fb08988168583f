package remote

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const credentialsFile = "credentials.json"

// Credentials are the opaque session tokens issued at login. They are stored
// next to the local database, never interpreted client-side.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Empty reports whether no session is stored.
func (c Credentials) Empty() bool {
	return c.AccessToken == ""
}

// CredentialsPath resolves the token file location under the data directory.
func CredentialsPath(basePath string) string {
	return filepath.Join(basePath, credentialsFile)
}

// LoadCredentials reads stored tokens. A missing file is not an error; it
// just means nobody is logged in.
func LoadCredentials(basePath string) (Credentials, error) {
	data, err := os.ReadFile(CredentialsPath(basePath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, nil
		}
		return Credentials{}, err
	}
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// SaveCredentials persists tokens with owner-only permissions.
func SaveCredentials(basePath string, c Credentials) error {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CredentialsPath(basePath), data, 0o600)
}

// ClearCredentials removes the stored session, logging the user out locally.
func ClearCredentials(basePath string) error {
	err := os.Remove(CredentialsPath(basePath))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
