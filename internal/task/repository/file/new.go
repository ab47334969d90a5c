package file

import (
	"path/filepath"
	"sync"

	"personal-task-management/pkg/log"
)

// RecordName is the durable record key for the task collection.
const RecordName = "task-storage.json"

// Repository stores the task snapshot as a JSON file in the data directory.
type Repository struct {
	l    log.Logger
	path string
	mu   sync.Mutex
}

// New creates a file-backed task repository rooted at dataDir.
func New(l log.Logger, dataDir string) *Repository {
	return &Repository{
		l:    l,
		path: filepath.Join(dataDir, RecordName),
	}
}
