// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookmarksColumns holds the columns for the "bookmarks" table.
	BookmarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeInt},
		{Name: "lesson", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// BookmarksTable holds the schema information for the "bookmarks" table.
	BookmarksTable = &schema.Table{
		Name:       "bookmarks",
		Columns:    BookmarksColumns,
		PrimaryKey: []*schema.Column{BookmarksColumns[0]},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5], LlmRequestEventsColumns[9]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// LessonActionEventsColumns holds the columns for the "lesson_action_events" table.
	LessonActionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "level", Type: field.TypeInt},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"viewed", "tried", "copied", "explained"}},
		{Name: "nrql", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LessonActionEventsTable holds the schema information for the "lesson_action_events" table.
	LessonActionEventsTable = &schema.Table{
		Name:       "lesson_action_events",
		Columns:    LessonActionEventsColumns,
		PrimaryKey: []*schema.Column{LessonActionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonActionEventsColumns[2]},
			},
			{
				Name:    "lessonactionevent_level_lesson_title",
				Unique:  false,
				Columns: []*schema.Column{LessonActionEventsColumns[3], LessonActionEventsColumns[4]},
			},
			{
				Name:    "lessonactionevent_action",
				Unique:  false,
				Columns: []*schema.Column{LessonActionEventsColumns[5]},
			},
		},
	}
	// QueryRunEventsColumns holds the columns for the "query_run_events" table.
	QueryRunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "nrql", Type: field.TypeString, Size: 2147483647},
		{Name: "engine", Type: field.TypeString},
		{Name: "series", Type: field.TypeInt, Default: 0},
		{Name: "rows", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// QueryRunEventsTable holds the schema information for the "query_run_events" table.
	QueryRunEventsTable = &schema.Table{
		Name:       "query_run_events",
		Columns:    QueryRunEventsColumns,
		PrimaryKey: []*schema.Column{QueryRunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryrunevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QueryRunEventsColumns[2]},
			},
			{
				Name:    "queryrunevent_account_id",
				Unique:  false,
				Columns: []*schema.Column{QueryRunEventsColumns[4]},
			},
			{
				Name:    "queryrunevent_success",
				Unique:  false,
				Columns: []*schema.Column{QueryRunEventsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookmarksTable,
		LlmRequestEventsTable,
		LessonActionEventsTable,
		QueryRunEventsTable,
	}
)

func init() {
}
