package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenMigrates(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"bookmarks", "query_run_events", "lesson_action_events", "llm_request_events", "event_sequence"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestPragmas(t *testing.T) {
	s := openTestStore(t)

	// journal_mode reports "memory" for in-memory databases.
	for pragma, want := range map[string]string{"foreign_keys": "1", "synchronous": "1", "busy_timeout": "5000"} {
		var got string
		if err := s.db.QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", pragma, err)
			continue
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestSequenceSpansTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLessonAction(ctx, LessonActionEventData{Level: 4, LessonTitle: "Introduction", Action: ActionTried}); err != nil {
		t.Fatalf("append action: %v", err)
	}
	if err := repo.AppendQueryRun(ctx, QueryRunEventData{RunID: "r1", Query: "SELECT 1", Engine: "offline", Success: true}); err != nil {
		t.Fatalf("append run: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Purpose: "explain"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	runs, _ := repo.QueryRuns(ctx, QueryOpts{})
	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	if len(runs) != 1 || len(llm) != 1 {
		t.Fatalf("runs=%d llm=%d, want 1 each", len(runs), len(llm))
	}
	if runs[0].Sequence != 2 || llm[0].Sequence != 3 {
		t.Errorf("sequences = %d, %d, want 2, 3", runs[0].Sequence, llm[0].Sequence)
	}

	n, err := s.seq.next(ctx)
	if err != nil || n != 4 {
		t.Errorf("next = %d, %v, want 4", n, err)
	}
}

func TestQueryRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, q := range []string{"SELECT count(*) FROM Transaction", "SELECT average(duration) FROM Transaction TIMESERIES"} {
		err := repo.AppendQueryRun(ctx, QueryRunEventData{
			RunID:     fmt.Sprintf("run-%d", i),
			AccountID: 1234,
			Query:     q,
			Engine:    "offline",
			Series:    1,
			Rows:      i + 1,
			LatencyMs: 12,
			Success:   true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	runs, err := repo.QueryRuns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].RunID != "run-1" {
		t.Errorf("first run = %q, want run-1", runs[0].RunID)
	}
	if runs[0].Sequence <= runs[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", runs[0].Sequence, runs[1].Sequence)
	}

	limited, err := repo.QueryRuns(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query runs (limit): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d runs", len(limited))
	}
}

func TestVisitedLessons(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LessonActionEventData{
		{Level: 4, LessonTitle: "Introduction", Action: ActionViewed},
		{Level: 4, LessonTitle: "Introduction", Action: ActionCopied, Query: "SELECT 1"},
		{Level: 4, LessonTitle: "Filter with regex", Action: ActionTried, Query: "SELECT 2"},
		{Level: 3, LessonTitle: "Other level", Action: ActionViewed},
	}
	for _, e := range events {
		if err := repo.AppendLessonAction(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	visited, err := repo.VisitedLessons(ctx, 4)
	if err != nil {
		t.Fatalf("visited: %v", err)
	}
	if len(visited) != 2 || !visited["Introduction"] || !visited["Filter with regex"] {
		t.Errorf("visited = %v", visited)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "explain", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "explain" {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestQueryWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := range 5 {
		if err := repo.AppendQueryRun(ctx, QueryRunEventData{RunID: fmt.Sprintf("r%d", i), Engine: "offline"}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	runs, err := repo.QueryRuns(ctx, QueryOpts{After: 1, Before: 5})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var ids []string
	for _, r := range runs {
		ids = append(ids, r.RunID)
	}
	if got := strings.Join(ids, ","); got != "r3,r2,r1" {
		t.Errorf("window = %s, want r3,r2,r1", got)
	}

	future, err := repo.QueryRuns(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query future: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("got %d runs from the future", len(future))
	}
}

func TestBookmarks(t *testing.T) {
	s := openTestStore(t)
	repo := s.BookmarkRepo()
	ctx := context.Background()

	b, err := repo.Latest(ctx)
	if err != nil || b != nil {
		t.Fatalf("latest on empty store = %+v, %v", b, err)
	}

	for i := range 8 {
		if err := repo.Save(ctx, Bookmark{Level: 4, Lesson: i % 6, Title: fmt.Sprintf("lesson %d", i)}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	b, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if b == nil || b.Level != 4 || b.Lesson != 1 || b.Title != "lesson 7" {
		t.Errorf("latest = %+v, want level 4 lesson 1", b)
	}
	if b != nil && b.SavedAt.IsZero() {
		t.Error("saved_at not set")
	}

	n, err := s.client.Bookmark.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != bookmarksKept {
		t.Errorf("kept %d bookmarks, want %d", n, bookmarksKept)
	}
}

func TestBookmarkRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	if err := s.BookmarkRepo().Save(context.Background(), Bookmark{Level: 0}); err == nil {
		t.Error("expected level 0 to be rejected")
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NRQLTUTOR_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(dir, "nrqltutor", "nrqltutor.db"); p != want {
		t.Errorf("path = %s, want %s", p, want)
	}

	explicit := filepath.Join(dir, "x", "custom.db")
	t.Setenv("NRQLTUTOR_DB", explicit)
	if p, _ := DefaultDBPath(); p != explicit {
		t.Errorf("path = %s, want %s", p, explicit)
	}
}
