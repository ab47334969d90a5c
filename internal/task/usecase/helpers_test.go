package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/internal/task/usecase"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockRepo records every snapshot handed to Save.
type mockRepo struct {
	mu      sync.Mutex
	seed    []model.Task
	loadErr error
	saved   [][]model.Task
}

func (m *mockRepo) Load(ctx context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Task{}, m.seed...), nil
}

func (m *mockRepo) Save(ctx context.Context, tasks []model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, tasks)
	return nil
}

func (m *mockRepo) lastSaved() []model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return nil
	}
	return m.saved[len(m.saved)-1]
}

// seqGen issues deterministic sequential identifiers.
type seqGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqGen) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("task-%d", g.n)
}

// stubTitles is an injectable title source. It returns titles verbatim so
// tests can exercise the store's own count clamping.
type stubTitles struct {
	titles []string
	err    error
	calls  int
}

func (s *stubTitles) GenerateTitles(ctx context.Context, topic string, count int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]string{}, s.titles...), nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

var testScope = model.Scope{UserID: "user-1"}

// newStore builds a store over the given collaborators. The returned closer
// flushes the snapshot writer; tests asserting persistence call it before
// inspecting the repo.
func newStore(t *testing.T, repo *mockRepo, titles *stubTitles) (task.UseCase, func() error) {
	t.Helper()

	uc, err := usecase.New(context.Background(), &mockLogger{}, repo, &seqGen{}, titles)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}

	var once sync.Once
	closer := func() error {
		var err error
		once.Do(func() { err = uc.Close() })
		return err
	}
	t.Cleanup(func() { closer() })

	return uc, closer
}

func mustAdd(t *testing.T, uc task.UseCase, input task.AddInput) model.Task {
	t.Helper()
	out, err := uc.Add(context.Background(), testScope, input)
	if err != nil {
		t.Fatalf("Add %q: %v", input.Title, err)
	}
	return out.Task
}
