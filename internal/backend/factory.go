package backend

import (
	"fmt"
	"log/slog"

	"spendtrack/internal/storage"
	"spendtrack/internal/store"
)

// Open builds the store for the given configuration. The returned store's
// Close releases whatever resources the backend holds.
func Open(cfg Config, logger *slog.Logger) (store.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %q (valid: %v)", cfg.Type, Types())
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Debug("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return repo, nil
	case MemoryBackend:
		logger.Debug("Initialized memory backend")
		return store.NewMemStore(), nil
	default:
		logger.Debug("Initialized JSON backend", "path", cfg.StoragePath)
		return store.NewJSONStore(cfg.StoragePath), nil
	}
}
