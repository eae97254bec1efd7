package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("DataBackend = %q", cfg.DataBackend)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "memory" || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{Port: "8082", DataBackend: "memory", LogLevel: "info"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	sqlite := &Config{Port: "8082", DataBackend: "sqlite", SQLiteDBPath: t.TempDir() + "/fintrack.db", LogLevel: "info"}
	if err := sqlite.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad port", Config{Port: "abc", DataBackend: "memory", LogLevel: "info"}, "invalid port"},
		{"port range", Config{Port: "70000", DataBackend: "memory", LogLevel: "info"}, "must be between"},
		{"bad backend", Config{Port: "8082", DataBackend: "redis", LogLevel: "info"}, "invalid data backend"},
		{"empty db path", Config{Port: "8082", DataBackend: "sqlite", LogLevel: "info"}, "path cannot be empty"},
		{"bad log level", Config{Port: "8082", DataBackend: "memory", LogLevel: "loud"}, "invalid log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{Port: "abc", DataBackend: "redis", LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}
