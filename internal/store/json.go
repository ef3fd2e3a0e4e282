package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendtrack/internal/core"
)

// JSONStore persists the collection as a single indented JSON array. It is
// the default backend: the file stays human-readable and self-describing.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the storage file location.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load(ctx context.Context) (core.Collection, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Collection{}, nil
		}
		return nil, fmt.Errorf("read expenses file: %w", err)
	}
	if len(raw) == 0 {
		return core.Collection{}, nil
	}

	var col core.Collection
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrCorruptData, s.path, err)
	}

	slog.DebugContext(ctx, "Expenses loaded", "path", s.path, "count", len(col))
	return col, nil
}

// Save writes the collection to a temp file in the target directory and
// renames it over the storage path, so a concurrent reader never observes a
// partially written file.
func (s *JSONStore) Save(ctx context.Context, col core.Collection) error {
	if col == nil {
		col = core.Collection{}
	}
	raw, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create storage directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".expenses-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace expenses file: %w", err)
	}

	slog.DebugContext(ctx, "Expenses saved", "path", s.path, "count", len(col))
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
