package store

import (
	"context"
	"time"
)

// QueryOpts narrows an event query. Zero fields are ignored. Results are
// always newest first.
type QueryOpts struct {
	Limit  int
	After  int64 // exclusive sequence bounds
	Before int64
	From   time.Time // inclusive timestamp bounds
	To     time.Time
}

// Bookmark is a lesson position the learner can resume from.
type Bookmark struct {
	ID      int
	Level   int
	Lesson  int
	Title   string
	SavedAt time.Time
}

// BookmarkRepo keeps the most recently opened lessons.
type BookmarkRepo interface {
	Save(ctx context.Context, b Bookmark) error
	// Latest returns nil when nothing was saved yet.
	Latest(ctx context.Context) (*Bookmark, error)
}

// QueryRunEventData captures one NRQL execution.
type QueryRunEventData struct {
	RunID        string
	AccountID    int
	Query        string
	Engine       string
	Series       int
	Rows         int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QueryRunRecord is a persisted query run.
type QueryRunRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QueryRunEventData
}

// LessonAction is what the learner did in a lesson.
type LessonAction string

const (
	ActionViewed    LessonAction = "viewed"
	ActionTried     LessonAction = "tried"
	ActionCopied    LessonAction = "copied"
	ActionExplained LessonAction = "explained"
)

// LessonActionEventData captures one learner action.
type LessonActionEventData struct {
	Level       int
	LessonTitle string
	Action      LessonAction
	Query       string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a persisted LLM request.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to tutorial events.
type EventRepo interface {
	AppendQueryRun(ctx context.Context, data QueryRunEventData) error
	QueryRuns(ctx context.Context, opts QueryOpts) ([]QueryRunRecord, error)

	AppendLessonAction(ctx context.Context, data LessonActionEventData) error
	// VisitedLessons returns the titles of lessons in level that have at
	// least one recorded action.
	VisitedLessons(ctx context.Context, level int) (map[string]bool, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)
}
