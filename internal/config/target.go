package config

import (
	"fmt"
	"strings"
)

// Target is a fully-resolved deploy target: the script name and account
// placement for one environment.
type Target struct {
	Environment string
	ScriptName  string
	Type        string
	AccountID   string
	ZoneID      string
	Route       string
	WorkersDev  bool
}

// ResolveTarget merges the named [env.<name>] table over the top-level
// settings. With no name it resolves the top-level target. An environment
// without its own name deploys as "<top-level-name>-<env>".
func ResolveTarget(config *Config, env string) (*Target, error) {
	envName := strings.TrimSpace(env)

	target := &Target{
		Environment: envName,
		ScriptName:  config.Name,
		Type:        config.Type,
		AccountID:   config.AccountID,
		ZoneID:      config.ZoneID,
		Route:       config.Route,
		WorkersDev:  config.WorkersDev,
	}

	if envName == "" {
		if target.ScriptName == "" {
			return nil, fmt.Errorf("edgeplane.toml does not set a script name; add name = \"...\" or run edgeplane init")
		}
		return target, nil
	}

	envConfig, ok := config.Environments[envName]
	if !ok {
		return nil, fmt.Errorf("environment %q is not defined in %s", envName, DefaultFileName)
	}

	if envConfig.Name != "" {
		target.ScriptName = envConfig.Name
	} else if config.Name != "" {
		target.ScriptName = config.Name + "-" + envName
	} else {
		return nil, fmt.Errorf("environment %q does not set a script name and edgeplane.toml has no top-level name", envName)
	}

	if envConfig.AccountID != "" {
		target.AccountID = envConfig.AccountID
	}
	if envConfig.ZoneID != "" {
		target.ZoneID = envConfig.ZoneID
	}
	if envConfig.Route != "" {
		target.Route = envConfig.Route
	}
	if envConfig.WorkersDev != nil {
		target.WorkersDev = *envConfig.WorkersDev
	}

	return target, nil
}
