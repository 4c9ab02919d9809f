package config

import (
	"testing"
	"time"

	runconfig "users-audit/core/config"
)

// clearEnv unsets every key LoadFromEnv reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"USERS_API_URL", "USERS_POLICY", "HTTP_TIMEOUT_SECONDS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Source.URL != "https://jsonplaceholder.typicode.com/users" {
		t.Errorf("URL = %v, want jsonplaceholder users endpoint", cfg.Source.URL)
	}
	if cfg.Source.Policy != runconfig.PolicyLenient {
		t.Errorf("Policy = %v, want %v", cfg.Source.Policy, runconfig.PolicyLenient)
	}
	if cfg.Source.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Source.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		expectedURL     string
		expectedPolicy  runconfig.Policy
		expectedTimeout time.Duration
	}{
		{
			name:            "uses USERS_API_URL when set",
			envVars:         map[string]string{"USERS_API_URL": "http://localhost:8080/users"},
			expectedURL:     "http://localhost:8080/users",
			expectedPolicy:  runconfig.PolicyLenient,
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "uses USERS_POLICY when set",
			envVars:         map[string]string{"USERS_POLICY": "strict"},
			expectedURL:     runconfig.DefaultUsersURL,
			expectedPolicy:  runconfig.PolicyStrict,
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "uses HTTP_TIMEOUT_SECONDS when set",
			envVars:         map[string]string{"HTTP_TIMEOUT_SECONDS": "5"},
			expectedURL:     runconfig.DefaultUsersURL,
			expectedPolicy:  runconfig.PolicyLenient,
			expectedTimeout: 5 * time.Second,
		},
		{
			name:            "invalid timeout falls back to default",
			envVars:         map[string]string{"HTTP_TIMEOUT_SECONDS": "soon"},
			expectedURL:     runconfig.DefaultUsersURL,
			expectedPolicy:  runconfig.PolicyLenient,
			expectedTimeout: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Source.URL != tt.expectedURL {
				t.Errorf("URL = %v, want %v", cfg.Source.URL, tt.expectedURL)
			}
			if cfg.Source.Policy != tt.expectedPolicy {
				t.Errorf("Policy = %v, want %v", cfg.Source.Policy, tt.expectedPolicy)
			}
			if cfg.Source.Timeout != tt.expectedTimeout {
				t.Errorf("Timeout = %v, want %v", cfg.Source.Timeout, tt.expectedTimeout)
			}
		})
	}
}

func TestLoadFromEnv_UnknownPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("USERS_POLICY", "sometimes")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() should fail for an unknown policy")
	}
}

func TestLoadFromEnv_LogFile(t *testing.T) {
	clearEnv(t)

	t.Setenv("LOG_FILE", "")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Logging.File != "" {
		t.Errorf("File = %q, want empty when LOG_FILE is set to empty", cfg.Logging.File)
	}

	t.Setenv("LOG_FILE", "/tmp/users.log")
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Logging.File != "/tmp/users.log" {
		t.Errorf("File = %q, want /tmp/users.log", cfg.Logging.File)
	}
}

func TestConfig_RunOptions(t *testing.T) {
	cfg := Config{Source: SourceConfig{URL: "http://example.com/users", Policy: runconfig.PolicyStrict}}

	run := runconfig.NewRunConfig(cfg.RunOptions()...)

	if run.Policy != runconfig.PolicyStrict {
		t.Errorf("Policy = %v, want strict", run.Policy)
	}
	if run.UsersURL != "http://example.com/users" {
		t.Errorf("UsersURL = %v, want http://example.com/users", run.UsersURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := SourceConfig{
		URL:     runconfig.DefaultUsersURL,
		Policy:  runconfig.PolicyLenient,
		Timeout: 30 * time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*SourceConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(s *SourceConfig) {},
			wantErr: false,
		},
		{
			name:    "empty URL",
			mutate:  func(s *SourceConfig) { s.URL = "" },
			wantErr: true,
			errMsg:  "users API URL cannot be empty",
		},
		{
			name:    "relative URL",
			mutate:  func(s *SourceConfig) { s.URL = "/users" },
			wantErr: true,
			errMsg:  "users API URL must be an absolute URL",
		},
		{
			name:    "unknown policy",
			mutate:  func(s *SourceConfig) { s.Policy = "mixed" },
			wantErr: true,
			errMsg:  "policy must be 'lenient' or 'strict'",
		},
		{
			name:    "timeout too short",
			mutate:  func(s *SourceConfig) { s.Timeout = 0 },
			wantErr: true,
			errMsg:  "HTTP timeout must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := valid
			tt.mutate(&source)
			cfg := Config{Source: source}

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
