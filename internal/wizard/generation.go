package wizard

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// configDocument is the shape written to edgeplane.toml. A dedicated struct
// keeps the wizard from writing empty optional tables.
type configDocument struct {
	Name       string `toml:"name"`
	Type       string `toml:"type"`
	AccountID  string `toml:"account_id,omitempty"`
	WorkersDev bool   `toml:"workers_dev"`
}

// GenerateConfig writes edgeplane.toml for the collected input. An existing
// file is only replaced when force is set.
func GenerateConfig(input ProjectInput, force bool) (*InitResult, error) {
	configPath := "edgeplane.toml"

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
		if !force {
			return nil, fmt.Errorf("%s already exists; re-run with --force to overwrite", configPath)
		}
	}

	doc := configDocument{
		Name:       input.Name,
		Type:       input.TargetType,
		AccountID:  input.AccountID,
		WorkersDev: true,
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", configPath, err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", configPath, err)
	}

	result := &InitResult{ConfigPath: configPath}
	if fileExists {
		result.ConfigUpdated = true
	} else {
		result.ConfigCreated = true
	}
	return result, nil
}
