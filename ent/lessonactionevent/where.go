// Code generated by ent, DO NOT EDIT.

package lessonactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldLevel, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// Nrql applies equality check predicate on the "nrql" field. It's identical to NrqlEQ.
func Nrql(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldNrql, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldLevel, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldContainsFold(FieldLessonTitle, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// NrqlEQ applies the EQ predicate on the "nrql" field.
func NrqlEQ(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEQ(FieldNrql, v))
}

// NrqlNEQ applies the NEQ predicate on the "nrql" field.
func NrqlNEQ(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNEQ(FieldNrql, v))
}

// NrqlIn applies the In predicate on the "nrql" field.
func NrqlIn(vs ...string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldIn(FieldNrql, vs...))
}

// NrqlNotIn applies the NotIn predicate on the "nrql" field.
func NrqlNotIn(vs ...string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldNotIn(FieldNrql, vs...))
}

// NrqlGT applies the GT predicate on the "nrql" field.
func NrqlGT(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGT(FieldNrql, v))
}

// NrqlGTE applies the GTE predicate on the "nrql" field.
func NrqlGTE(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldGTE(FieldNrql, v))
}

// NrqlLT applies the LT predicate on the "nrql" field.
func NrqlLT(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLT(FieldNrql, v))
}

// NrqlLTE applies the LTE predicate on the "nrql" field.
func NrqlLTE(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldLTE(FieldNrql, v))
}

// NrqlContains applies the Contains predicate on the "nrql" field.
func NrqlContains(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldContains(FieldNrql, v))
}

// NrqlHasPrefix applies the HasPrefix predicate on the "nrql" field.
func NrqlHasPrefix(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldHasPrefix(FieldNrql, v))
}

// NrqlHasSuffix applies the HasSuffix predicate on the "nrql" field.
func NrqlHasSuffix(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldHasSuffix(FieldNrql, v))
}

// NrqlEqualFold applies the EqualFold predicate on the "nrql" field.
func NrqlEqualFold(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldEqualFold(FieldNrql, v))
}

// NrqlContainsFold applies the ContainsFold predicate on the "nrql" field.
func NrqlContainsFold(v string) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.FieldContainsFold(FieldNrql, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonActionEvent) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonActionEvent) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonActionEvent) predicate.LessonActionEvent {
	return predicate.LessonActionEvent(sql.NotPredicates(p))
}
