package file

import (
	"path/filepath"
	"sync"

	"personal-task-management/pkg/log"
)

// RecordName is the durable record key for the session state.
const RecordName = "auth-storage.json"

// Repository stores the session record as a JSON file in the data directory.
type Repository struct {
	l    log.Logger
	path string
	mu   sync.Mutex
}

// New creates a file-backed session repository rooted at dataDir.
func New(l log.Logger, dataDir string) *Repository {
	return &Repository{
		l:    l,
		path: filepath.Join(dataDir, RecordName),
	}
}
