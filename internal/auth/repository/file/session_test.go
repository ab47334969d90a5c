package file_test

import (
	"context"
	"testing"
	"time"

	"personal-task-management/internal/auth/repository"
	"personal-task-management/internal/auth/repository/file"
	"personal-task-management/internal/model"
)

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

func TestLoadMissingFileIsUnauthenticated(t *testing.T) {
	repo := file.New(&mockLogger{}, t.TempDir())

	rec, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.User != nil || rec.IsAuthenticated {
		t.Errorf("expected empty session, got %+v", rec)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	repo := file.New(&mockLogger{}, t.TempDir())
	ctx := context.Background()

	created := time.Date(2026, 8, 29, 9, 15, 42, 987654321, time.UTC)
	original := repository.Record{
		User: &model.User{
			ID:        "user-1",
			Email:     "ada@example.com",
			Name:      "ada",
			CreatedAt: created,
		},
		IsAuthenticated: true,
	}

	if err := repo.Save(ctx, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.IsAuthenticated || loaded.User == nil {
		t.Fatalf("session state lost: %+v", loaded)
	}
	if loaded.User.ID != "user-1" || loaded.User.Email != "ada@example.com" || loaded.User.Name != "ada" {
		t.Errorf("user fields differ: %+v", loaded.User)
	}
	if !loaded.User.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt not preserved: %v vs %v", loaded.User.CreatedAt, created)
	}
}

func TestLogoutStateRoundTrip(t *testing.T) {
	repo := file.New(&mockLogger{}, t.TempDir())
	ctx := context.Background()

	if err := repo.Save(ctx, repository.Record{User: &model.User{ID: "u"}, IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, repository.Record{}); err != nil {
		t.Fatalf("Save cleared: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User != nil || loaded.IsAuthenticated {
		t.Errorf("expected cleared session, got %+v", loaded)
	}
}
