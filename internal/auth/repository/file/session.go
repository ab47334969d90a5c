package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"personal-task-management/internal/auth/repository"
)

// Load reads the session record. A missing file yields an empty,
// unauthenticated session.
func (r *Repository) Load(ctx context.Context) (repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.l.Debugf(ctx, "no session record at %s, starting unauthenticated", r.path)
			return repository.Record{}, nil
		}
		return repository.Record{}, fmt.Errorf("read session record: %w", err)
	}

	var rec repository.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return repository.Record{}, fmt.Errorf("decode session record: %w", err)
	}
	return rec, nil
}

// Save writes the session record atomically via temp file + rename.
func (r *Repository) Save(ctx context.Context, rec repository.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), RecordName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp record: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session record: %w", err)
	}
	return nil
}
