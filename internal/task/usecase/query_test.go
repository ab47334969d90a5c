package usecase_test

import (
	"context"
	"math"
	"testing"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

func TestStatsEmptyCollection(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})

	stats, err := uc.Stats(context.Background(), testScope)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Pending != 0 || stats.CompletionRate != 0 {
		t.Errorf("expected all zeroes on empty collection, got %+v", stats)
	}
}

// The three-task worked example: A(work, incomplete), B(personal, complete),
// C(work, complete).
func seedWorkedExample(t *testing.T, uc task.UseCase) (a, b, c model.Task) {
	t.Helper()
	ctx := context.Background()

	a = mustAdd(t, uc, task.AddInput{Title: "A", Category: model.CategoryWork})
	b = mustAdd(t, uc, task.AddInput{Title: "B", Category: model.CategoryPersonal})
	c = mustAdd(t, uc, task.AddInput{Title: "C", Category: model.CategoryWork})

	for _, id := range []string{b.ID, c.ID} {
		if _, err := uc.Toggle(ctx, testScope, id); err != nil {
			t.Fatalf("Toggle %s: %v", id, err)
		}
	}
	return a, b, c
}

func TestStatsWorkedExample(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	seedWorkedExample(t, uc)

	stats, err := uc.Stats(context.Background(), testScope)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Completed != 2 || stats.Pending != 1 {
		t.Errorf("expected total=3 completed=2 pending=1, got %+v", stats)
	}
	if math.Abs(stats.CompletionRate-200.0/3.0) > 0.01 {
		t.Errorf("expected completion rate ~66.67, got %f", stats.CompletionRate)
	}
}

func TestFilterByCategoryKeepsOrder(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	a, _, c := seedWorkedExample(t, uc)

	work := model.CategoryWork
	out, err := uc.Filter(context.Background(), testScope, task.FilterInput{Category: &work})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("expected 2 work tasks, got %d", len(out.Tasks))
	}
	if out.Tasks[0].ID != a.ID || out.Tasks[1].ID != c.ID {
		t.Errorf("expected [A, C] in original order, got %+v", out.Tasks)
	}
}

func TestFilterComposesWithAND(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	a, _, _ := seedWorkedExample(t, uc)

	work := model.CategoryWork
	incomplete := false
	out, err := uc.Filter(context.Background(), testScope, task.FilterInput{
		Category:  &work,
		Completed: &incomplete,
	})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != a.ID {
		t.Errorf("expected exactly [A], got %+v", out.Tasks)
	}
}

func TestEmptyFilterReturnsFullCollection(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	a, b, c := seedWorkedExample(t, uc)

	out, err := uc.Filter(context.Background(), testScope, task.FilterInput{})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if out.Total != 3 {
		t.Fatalf("expected all 3 tasks, got %d", out.Total)
	}
	for i, want := range []string{a.ID, b.ID, c.ID} {
		if out.Tasks[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, out.Tasks[i].ID)
		}
	}
}

func TestFilterResultDoesNotAliasCollection(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	seedWorkedExample(t, uc)
	ctx := context.Background()

	out, _ := uc.Filter(ctx, testScope, task.FilterInput{})
	out.Tasks[0].Title = "scribbled over"

	fresh, _ := uc.Filter(ctx, testScope, task.FilterInput{})
	if fresh.Tasks[0].Title != "A" {
		t.Error("mutating a filter result must not affect the collection")
	}
}

func TestByCategoryMatchesFilter(t *testing.T) {
	uc, _ := newStore(t, &mockRepo{}, &stubTitles{})
	seedWorkedExample(t, uc)
	ctx := context.Background()

	byCat, err := uc.ByCategory(ctx, testScope, model.CategoryWork)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}

	work := model.CategoryWork
	filtered, _ := uc.Filter(ctx, testScope, task.FilterInput{Category: &work})

	if len(byCat.Tasks) != len(filtered.Tasks) {
		t.Fatalf("ByCategory and Filter disagree: %d vs %d", len(byCat.Tasks), len(filtered.Tasks))
	}
	for i := range byCat.Tasks {
		if byCat.Tasks[i].ID != filtered.Tasks[i].ID {
			t.Errorf("position %d differs: %s vs %s", i, byCat.Tasks[i].ID, filtered.Tasks[i].ID)
		}
	}
}
