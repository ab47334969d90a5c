package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"personal-task-management/internal/model"
)

// record is the on-disk layout of the task snapshot. Timestamps round-trip
// as RFC 3339 with nanosecond precision via time.Time's JSON encoding.
type record struct {
	Tasks []model.Task `json:"tasks"`
}

// Load reads the snapshot. A missing file means no snapshot was written yet
// and yields an empty collection.
func (r *Repository) Load(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.l.Debugf(ctx, "no task record at %s, starting empty", r.path)
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read task record: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode task record: %w", err)
	}
	if rec.Tasks == nil {
		rec.Tasks = []model.Task{}
	}
	return rec.Tasks, nil
}

// Save writes the snapshot atomically: encode to a temp file, then rename
// over the record so a crash mid-write never leaves a corrupt snapshot.
func (r *Repository) Save(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(record{Tasks: tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task record: %w", err)
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
		return fmt.Errorf("replace task record: %w", err)
	}
	return nil
}
