package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

func TestGenerateReturnsCandidatesWithoutInserting(t *testing.T) {
	titles := &stubTitles{titles: []string{
		"Set up Python development environment",
		"Complete Python basics tutorial on variables and data types",
		"Practice writing functions and control structures",
	}}
	uc, _ := newStore(t, &mockRepo{}, titles)
	ctx := context.Background()

	out, err := uc.Generate(ctx, testScope, task.GenerateInput{Topic: "Learn Python", Count: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Count != 3 || len(out.Tasks) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(out.Tasks))
	}

	for i, cand := range out.Tasks {
		if !cand.AIGenerated {
			t.Errorf("candidate %d must be flagged ai-generated", i)
		}
		if cand.Completed {
			t.Errorf("candidate %d must start incomplete", i)
		}
		if cand.Category != model.CategoryOther {
			t.Errorf("candidate %d: expected default category other, got %s", i, cand.Category)
		}
		if cand.Priority != model.PriorityMedium {
			t.Errorf("candidate %d: expected priority medium, got %s", i, cand.Priority)
		}
		if cand.ID == "" {
			t.Errorf("candidate %d has no id", i)
		}
	}

	// Candidates are a preview, not part of the collection.
	stats, _ := uc.Stats(ctx, testScope)
	if stats.Total != 0 {
		t.Errorf("collection must stay empty until commit, got %d tasks", stats.Total)
	}

	status := uc.GenerationStatus(ctx, testScope)
	if status.Loading || status.Error != "" {
		t.Errorf("expected idle status after success, got %+v", status)
	}
}

func TestGenerateClampsCountToReturnedTitles(t *testing.T) {
	titles := &stubTitles{titles: []string{"one", "two", "three", "four", "five"}}
	uc, _ := newStore(t, &mockRepo{}, titles)

	out, err := uc.Generate(context.Background(), testScope, task.GenerateInput{Topic: "anything", Count: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.Tasks) != 3 {
		t.Errorf("expected count clamp to 3, got %d", len(out.Tasks))
	}
}

func TestGenerateUsesRequestedCategory(t *testing.T) {
	titles := &stubTitles{titles: []string{"stretch", "run"}}
	uc, _ := newStore(t, &mockRepo{}, titles)

	out, err := uc.Generate(context.Background(), testScope, task.GenerateInput{
		Topic:    "Fitness",
		Count:    2,
		Category: model.CategoryHealth,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, cand := range out.Tasks {
		if cand.Category != model.CategoryHealth {
			t.Errorf("candidate %d: expected health, got %s", i, cand.Category)
		}
	}
}

func TestGenerateFailureRecordsErrorAndRetryResetsIt(t *testing.T) {
	titles := &stubTitles{err: errors.New("upstream unavailable")}
	uc, _ := newStore(t, &mockRepo{}, titles)
	ctx := context.Background()

	out, err := uc.Generate(ctx, testScope, task.GenerateInput{Topic: "Fitness", Count: 3})
	if err != nil {
		t.Fatalf("generation failure must not propagate, got %v", err)
	}
	if out.Tasks == nil || len(out.Tasks) != 0 {
		t.Errorf("expected empty candidate list, got %+v", out.Tasks)
	}

	status := uc.GenerationStatus(ctx, testScope)
	if status.Loading {
		t.Error("loading flag must be cleared after failure")
	}
	if !strings.Contains(status.Error, "upstream unavailable") {
		t.Errorf("expected failure message on status, got %q", status.Error)
	}

	// A later success must not be masked by the stale error.
	titles.err = nil
	titles.titles = []string{"stretch"}

	out, err = uc.Generate(ctx, testScope, task.GenerateInput{Topic: "Fitness", Count: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected 1 candidate after retry, got %d", len(out.Tasks))
	}

	status = uc.GenerationStatus(ctx, testScope)
	if status.Error != "" {
		t.Errorf("retry must reset the error state, got %q", status.Error)
	}
}

func TestCommitMovesCandidatesThroughAddPath(t *testing.T) {
	titles := &stubTitles{titles: []string{"one", "two", "three"}}
	uc, _ := newStore(t, &mockRepo{}, titles)
	ctx := context.Background()

	generated, err := uc.Generate(ctx, testScope, task.GenerateInput{Topic: "Learn Python", Count: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	candidates := make([]task.Candidate, 0, len(generated.Tasks))
	for _, cand := range generated.Tasks {
		candidates = append(candidates, task.Candidate{
			Title:       cand.Title,
			Description: cand.Description,
			Category:    cand.Category,
			Priority:    cand.Priority,
			DueDate:     cand.DueDate,
			AIGenerated: cand.AIGenerated,
		})
	}

	committed, err := uc.Commit(ctx, testScope, task.CommitInput{Candidates: candidates})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if committed.Count != 3 {
		t.Fatalf("expected 3 committed tasks, got %d", committed.Count)
	}

	stats, _ := uc.Stats(ctx, testScope)
	if stats.Total != 3 {
		t.Errorf("collection must grow by exactly 3, got %d", stats.Total)
	}

	generatedIDs := make(map[string]bool)
	for _, cand := range generated.Tasks {
		generatedIDs[cand.ID] = true
	}
	for i, created := range committed.Tasks {
		if !created.AIGenerated {
			t.Errorf("task %d lost its ai-generated flag on commit", i)
		}
		if generatedIDs[created.ID] {
			t.Errorf("task %d reused the generation-time id %s", i, created.ID)
		}
	}
}

func TestCommitEmptyBatchIsNoOp(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	ctx := context.Background()

	out, err := uc.Commit(ctx, testScope, task.CommitInput{})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("expected 0 committed tasks, got %d", out.Count)
	}

	stats, _ := uc.Stats(ctx, testScope)
	if stats.Total != 0 {
		t.Errorf("empty commit must not touch the collection, got %d tasks", stats.Total)
	}
}
