package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// TokenEnvVar overrides any stored credential when set.
const TokenEnvVar = "EDGEPLANE_API_TOKEN"

const credentialsFileName = "credentials.toml"

// Credentials holds the API token used for every authenticated call.
type Credentials struct {
	APIToken string `toml:"api_token"`
}

// CredentialsPath returns the path of the stored credentials file under the
// user config directory.
func CredentialsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "edgeplane", credentialsFileName), nil
}

// LoadCredentials resolves the API token: a .env file in the working
// directory is overlaid first, then EDGEPLANE_API_TOKEN wins over the stored
// credentials file. A missing token is an error telling the user how to
// authenticate.
func LoadCredentials() (*Credentials, error) {
	// Ignore a missing .env; it is optional.
	_ = godotenv.Load()

	if token := os.Getenv(TokenEnvVar); token != "" {
		return &Credentials{APIToken: token}, nil
	}

	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no API token found; run edgeplane login or set %s", TokenEnvVar)
		}
		return nil, err
	}

	var creds Credentials
	if err := toml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if creds.APIToken == "" {
		return nil, fmt.Errorf("%s does not contain an api_token; run edgeplane login", path)
	}
	return &creds, nil
}

// SaveCredentials writes the token to the stored credentials file, creating
// the directory if needed. The file is user-readable only.
func SaveCredentials(creds *Credentials) (string, error) {
	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}

	data, err := toml.Marshal(creds)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// RemoveCredentials deletes the stored credentials file. Removing a file
// that does not exist is not an error.
func RemoveCredentials() (string, error) {
	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return path, nil
}
