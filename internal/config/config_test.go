package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid json backend config",
			config: Config{
				StoragePath: "expenses.json",
				DataBackend: "json",
				LogLevel:    "info",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				LogLevel:     "warn",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "postgres",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "json backend missing storage path",
			config: Config{
				DataBackend: "json",
				StoragePath: "",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "storage path cannot be empty when using json backend",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend: "json",
				StoragePath: "expenses.json",
				LogLevel:    "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"STORAGE_PATH", "DATA_BACKEND", "SQLITE_DB_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.StoragePath != DefaultStoragePath {
			t.Errorf("Load() StoragePath = %v, want %v", cfg.StoragePath, DefaultStoragePath)
		}
		if cfg.DataBackend != "json" {
			t.Errorf("Load() DataBackend = %v, want json", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != DefaultSQLiteDBPath {
			t.Errorf("Load() SQLiteDBPath = %v, want %v", cfg.SQLiteDBPath, DefaultSQLiteDBPath)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("STORAGE_PATH", "/tmp/expenses.json")
		t.Setenv("DATA_BACKEND", "sqlite")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.StoragePath != "/tmp/expenses.json" {
			t.Errorf("Load() StoragePath = %v, want /tmp/expenses.json", cfg.StoragePath)
		}
		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"ERROR", slog.LevelError, true},
		{"loud", slog.LevelWarn, false},
	}
	for _, tc := range cases {
		cfg := Config{LogLevel: tc.in}
		got, err := cfg.SlogLevel()
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("SlogLevel(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("SlogLevel(%q) expected error", tc.in)
		}
	}
}
