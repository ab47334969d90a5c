package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"personal-task-management/internal/auth/repository"
	"personal-task-management/internal/model"
	"personal-task-management/pkg/idgen"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/scope"
)

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	ids     idgen.Generator
	tokens  scope.Manager
	latency time.Duration

	mu            sync.RWMutex
	user          *model.User
	authenticated bool
}

// New rehydrates the persisted session and returns the session state owner.
// latency simulates the remote auth call on Login and Signup.
func New(ctx context.Context, l log.Logger, repo repository.Repository, ids idgen.Generator, tokens scope.Manager, latency time.Duration) (*implUseCase, error) {
	rec, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}

	uc := &implUseCase{
		l:             l,
		repo:          repo,
		ids:           ids,
		tokens:        tokens,
		latency:       latency,
		user:          rec.User,
		authenticated: rec.IsAuthenticated,
	}

	if rec.IsAuthenticated && rec.User != nil {
		l.Infof(ctx, "session restored for %s", rec.User.Email)
	}
	return uc, nil
}

// suspend simulates remote call latency, honoring context cancellation.
func (uc *implUseCase) suspend(ctx context.Context) error {
	if uc.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// persist writes the session record. A storage failure is logged and
// swallowed so it never corrupts the in-memory session.
func (uc *implUseCase) persist(ctx context.Context, rec repository.Record) {
	if err := uc.repo.Save(ctx, rec); err != nil {
		uc.l.Errorf(ctx, "session record save failed: %v", err)
	}
}
