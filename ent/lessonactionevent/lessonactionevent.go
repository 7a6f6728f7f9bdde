// Code generated by ent, DO NOT EDIT.

package lessonactionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonactionevent type in the database.
	Label = "lesson_action_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldNrql holds the string denoting the nrql field in the database.
	FieldNrql = "nrql"
	// Table holds the table name of the lessonactionevent in the database.
	Table = "lesson_action_events"
)

// Columns holds all SQL columns for lessonactionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLevel,
	FieldLessonTitle,
	FieldAction,
	FieldNrql,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int64) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	LessonTitleValidator func(string) error
	// DefaultNrql holds the default value on creation for the "nrql" field.
	DefaultNrql string
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionViewed    Action = "viewed"
	ActionTried     Action = "tried"
	ActionCopied    Action = "copied"
	ActionExplained Action = "explained"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionViewed, ActionTried, ActionCopied, ActionExplained:
		return nil
	default:
		return fmt.Errorf("lessonactionevent: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the LessonActionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByNrql orders the results by the nrql field.
func ByNrql(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNrql, opts...).ToFunc()
}
