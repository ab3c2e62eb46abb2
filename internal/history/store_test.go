package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"triage/internal/history"
	"triage/internal/testsupport"
)

func mustOpen(t *testing.T) *history.Store {
	t.Helper()
	return testsupport.MustOpenStore(t, testsupport.NewConfig(t))
}

func TestRecordAndListRuns(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	run, err := store.RecordRun(ctx, history.Run{
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		AsOf:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		InputPath:  "/data/master.xlsx",
		InputRows:  120,
		GroupCount: 37,
		RuleCounts: map[string]int{"1": 4, "2a": 1, "2b": 0, "2c": 0, "2d": 2},
		OutputDir:  "/data/out",
	})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected generated run ID")
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.InputRows != 120 || got.GroupCount != 37 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if got.RuleCounts["1"] != 4 || got.RuleCounts["2d"] != 2 {
		t.Fatalf("unexpected rule counts: %v", got.RuleCounts)
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("unexpected started at: %v", got.StartedAt)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(ctx, history.Run{
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Second),
			AsOf:       base,
			InputPath:  "/data/master.xlsx",
			RuleCounts: map[string]int{},
		})
		if err != nil {
			t.Fatalf("RecordRun %d: %v", i, err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Fatalf("expected newest first: %v then %v", runs[0].StartedAt, runs[1].StartedAt)
	}
}

func TestRecordRunRequiresInputPath(t *testing.T) {
	store := mustOpen(t)
	if _, err := store.RecordRun(context.Background(), history.Run{}); err == nil {
		t.Fatal("expected error for missing input path")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	first, err := history.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := history.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = second.Close()
}
