// Package backend selects and constructs the expense store configured for
// this invocation.
package backend

import (
	"spendtrack/internal/config"
)

// Type identifies a storage backend.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{JSONBackend, SQLiteBackend, MemoryBackend}
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type Type

	// JSON backend
	StoragePath string

	// SQLite backend
	SQLiteDBPath string
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:         Type(appConfig.DataBackend),
		StoragePath:  appConfig.StoragePath,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}
}
