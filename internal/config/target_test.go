package config

import "testing"

func boolptr(b bool) *bool {
	return &b
}

func baseConfig() *Config {
	return &Config{
		Name:       "my-worker",
		Type:       "javascript",
		AccountID:  "acct",
		ZoneID:     "zone",
		Route:      "example.com/*",
		WorkersDev: true,
		Environments: map[string]EnvironmentConfig{
			"staging": {
				Route: "staging.example.com/*",
			},
			"production": {
				Name:       "my-worker-prod",
				AccountID:  "prod-acct",
				WorkersDev: boolptr(false),
			},
		},
	}
}

func TestResolveTargetTopLevel(t *testing.T) {
	target, err := ResolveTarget(baseConfig(), "")
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if target.ScriptName != "my-worker" {
		t.Errorf("ScriptName = %q, want %q", target.ScriptName, "my-worker")
	}
	if target.AccountID != "acct" || target.ZoneID != "zone" {
		t.Errorf("placement = %q/%q, want acct/zone", target.AccountID, target.ZoneID)
	}
	if !target.WorkersDev {
		t.Error("WorkersDev should inherit true")
	}
}

func TestResolveTargetEnvInheritsAndOverrides(t *testing.T) {
	target, err := ResolveTarget(baseConfig(), "staging")
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}

	// No env-level name: the script deploys as "<name>-<env>".
	if target.ScriptName != "my-worker-staging" {
		t.Errorf("ScriptName = %q, want %q", target.ScriptName, "my-worker-staging")
	}
	if target.Route != "staging.example.com/*" {
		t.Errorf("Route = %q, want the staging override", target.Route)
	}
	if target.AccountID != "acct" {
		t.Errorf("AccountID = %q, want inherited %q", target.AccountID, "acct")
	}
}

func TestResolveTargetEnvExplicitName(t *testing.T) {
	target, err := ResolveTarget(baseConfig(), "production")
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if target.ScriptName != "my-worker-prod" {
		t.Errorf("ScriptName = %q, want %q", target.ScriptName, "my-worker-prod")
	}
	if target.AccountID != "prod-acct" {
		t.Errorf("AccountID = %q, want %q", target.AccountID, "prod-acct")
	}
	if target.WorkersDev {
		t.Error("WorkersDev should be overridden to false")
	}
}

func TestResolveTargetUnknownEnv(t *testing.T) {
	if _, err := ResolveTarget(baseConfig(), "qa"); err == nil {
		t.Error("expected an error for an undefined environment")
	}
}

func TestResolveTargetMissingName(t *testing.T) {
	if _, err := ResolveTarget(&Config{}, ""); err == nil {
		t.Error("expected an error when no script name is configured")
	}
}
