package usecase

import (
	"context"
	"fmt"
	"sync"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/idgen"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/taskgen"
)

// implUseCase owns the canonical task collection. All reads and mutations go
// through mu; there is exactly one state owner per process.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	ids    idgen.Generator
	titles taskgen.TitleSource

	mu    sync.RWMutex
	tasks []model.Task

	// Generation status fields are shared across calls, not scoped per call.
	// Two concurrent Generate calls interleave their effects here; the last
	// one to finish wins.
	loading bool
	genErr  string

	saveCh chan []model.Task
	done   chan struct{}
}

// New loads the persisted collection and starts the snapshot writer.
// The identifier generator and title source are injected so tests can run
// deterministically.
func New(ctx context.Context, l log.Logger, repo repository.Repository, ids idgen.Generator, titles taskgen.TitleSource) (*implUseCase, error) {
	tasks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load task snapshot: %w", err)
	}

	uc := &implUseCase{
		l:      l,
		repo:   repo,
		ids:    ids,
		titles: titles,
		tasks:  tasks,
		saveCh: make(chan []model.Task, 1),
		done:   make(chan struct{}),
	}
	go uc.saver()

	l.Infof(ctx, "task store loaded %d tasks", len(tasks))
	return uc, nil
}

// persistLocked queues the current collection for writing. Must be called
// with mu held, which serializes producers; a pending older snapshot is
// replaced by the newer one so the writer never regresses.
func (uc *implUseCase) persistLocked() {
	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)

	for {
		select {
		case uc.saveCh <- snapshot:
			return
		default:
			select {
			case <-uc.saveCh:
			default:
			}
		}
	}
}

func (uc *implUseCase) saver() {
	defer close(uc.done)
	for snapshot := range uc.saveCh {
		if err := uc.repo.Save(context.Background(), snapshot); err != nil {
			// A failed write never touches the in-memory collection.
			uc.l.Errorf(context.Background(), "task snapshot save failed: %v", err)
		}
	}
}

// Close flushes pending snapshots and stops the writer. No mutation may be
// issued after Close.
func (uc *implUseCase) Close() error {
	close(uc.saveCh)
	<-uc.done
	return nil
}
