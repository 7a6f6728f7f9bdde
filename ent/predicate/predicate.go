// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bookmark is the predicate function for bookmark builders.
type Bookmark func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonActionEvent is the predicate function for lessonactionevent builders.
type LessonActionEvent func(*sql.Selector)

// QueryRunEvent is the predicate function for queryrunevent builders.
type QueryRunEvent func(*sql.Selector)
