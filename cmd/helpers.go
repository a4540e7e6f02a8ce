package cmd

import (
	"fmt"
	"os"

	"github.com/edgeplane/edgeplane/internal/api"
	"github.com/edgeplane/edgeplane/internal/config"
)

// fatal prints the error and exits; command Run funcs use it for anything
// that stops the command.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadConfig loads the config file from the --config path.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(fmt.Errorf("load config file: %w", err))
	}
	return cfg
}

// resolveTarget resolves the deploy target for the --env flag.
func resolveTarget(cfg *config.Config) *config.Target {
	target, err := config.ResolveTarget(cfg, environment)
	if err != nil {
		fatal(err)
	}
	return target
}

// requireAccount exits when the target has no account ID; most API calls
// are placed under an account.
func requireAccount(target *config.Target) {
	if target.AccountID == "" {
		fatal(fmt.Errorf("no account_id configured; add it to %s or run edgeplane init", config.DefaultFileName))
	}
}

// newClient builds an authenticated API client, honoring the
// EDGEPLANE_API_URL override for self-hosted or test endpoints.
func newClient() *api.Client {
	creds, err := config.LoadCredentials()
	if err != nil {
		fatal(err)
	}
	return api.NewClient(os.Getenv("EDGEPLANE_API_URL"), creds.APIToken)
}

// printConfigNotFound prints a helpful message when edgeplane.toml is not found
func printConfigNotFound() {
	fmt.Println(`edgeplane.toml not found. Create one that looks like:

name = "my-worker"
type = "javascript"
account_id = "<32-char account id>"
workers_dev = true

or run edgeplane init.`)
}
