// Package config loads edgeplane.toml and resolves deploy targets and
// credentials for a named environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the config file edgeplane looks for when no explicit
// --config path is given.
const DefaultFileName = "edgeplane.toml"

// DevConfig holds defaults for the local dev server.
type DevConfig struct {
	Host             string `toml:"host"`
	IP               string `toml:"ip"`
	Port             int    `toml:"port"`
	LocalProtocol    string `toml:"local_protocol"`
	UpstreamProtocol string `toml:"upstream_protocol"`
}

// BuildConfig describes how to build the script before deploying.
type BuildConfig struct {
	Command string `toml:"command"`
	Dir     string `toml:"dir"`
	Output  string `toml:"output"`
}

// R2Config points object commands at the account's S3-compatible endpoint.
type R2Config struct {
	Endpoint string `toml:"endpoint"`
	Region   string `toml:"region"`
}

// EnvironmentConfig overrides top-level settings for one named environment
// ([env.<name>] table). Zero-valued fields inherit the top-level value.
type EnvironmentConfig struct {
	Name       string `toml:"name"`
	AccountID  string `toml:"account_id"`
	ZoneID     string `toml:"zone_id"`
	Route      string `toml:"route"`
	WorkersDev *bool  `toml:"workers_dev"`
}

type Config struct {
	Name       string `toml:"name"`
	Type       string `toml:"type"`
	AccountID  string `toml:"account_id"`
	ZoneID     string `toml:"zone_id"`
	Route      string `toml:"route"`
	WorkersDev bool   `toml:"workers_dev"`

	Build BuildConfig `toml:"build"`
	Dev   DevConfig   `toml:"dev"`
	R2    R2Config    `toml:"r2"`

	Environments map[string]EnvironmentConfig `toml:"env"`

	ConfigFilePath string `toml:"-"`
}

// ConfigDir returns the directory holding the config file, or "" when the
// config was not loaded from disk.
func (c *Config) ConfigDir() string {
	if c.ConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c.ConfigFilePath)
}

// Load reads the config at path. When path is the default file name, Load
// searches upward from the working directory, stopping at a project root
// marker, and returns an empty config if no file is found. An explicit
// non-default path must exist.
func Load(path string) (*Config, error) {
	if path != DefaultFileName {
		return readFile(path)
	}

	startDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dir := startDir
	for {
		configPath := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(configPath); err == nil {
			return readFile(configPath)
		}

		if isProjectRoot(dir) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return &Config{}, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	config.ConfigFilePath = path
	return &config, nil
}

// isProjectRoot checks if the directory is a project root based on common markers
func isProjectRoot(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
		return true
	}
	return false
}
