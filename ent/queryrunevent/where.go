// Code generated by ent, DO NOT EDIT.

package queryrunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldRunID, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldAccountID, v))
}

// Nrql applies equality check predicate on the "nrql" field. It's identical to NrqlEQ.
func Nrql(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldNrql, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldEngine, v))
}

// Series applies equality check predicate on the "series" field. It's identical to SeriesEQ.
func Series(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSeries, v))
}

// Rows applies equality check predicate on the "rows" field. It's identical to RowsEQ.
func Rows(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldRows, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldAccountID, v))
}

// NrqlEQ applies the EQ predicate on the "nrql" field.
func NrqlEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldNrql, v))
}

// NrqlNEQ applies the NEQ predicate on the "nrql" field.
func NrqlNEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldNrql, v))
}

// NrqlIn applies the In predicate on the "nrql" field.
func NrqlIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldNrql, vs...))
}

// NrqlNotIn applies the NotIn predicate on the "nrql" field.
func NrqlNotIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldNrql, vs...))
}

// NrqlGT applies the GT predicate on the "nrql" field.
func NrqlGT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldNrql, v))
}

// NrqlGTE applies the GTE predicate on the "nrql" field.
func NrqlGTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldNrql, v))
}

// NrqlLT applies the LT predicate on the "nrql" field.
func NrqlLT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldNrql, v))
}

// NrqlLTE applies the LTE predicate on the "nrql" field.
func NrqlLTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldNrql, v))
}

// NrqlContains applies the Contains predicate on the "nrql" field.
func NrqlContains(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContains(FieldNrql, v))
}

// NrqlHasPrefix applies the HasPrefix predicate on the "nrql" field.
func NrqlHasPrefix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasPrefix(FieldNrql, v))
}

// NrqlHasSuffix applies the HasSuffix predicate on the "nrql" field.
func NrqlHasSuffix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasSuffix(FieldNrql, v))
}

// NrqlEqualFold applies the EqualFold predicate on the "nrql" field.
func NrqlEqualFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEqualFold(FieldNrql, v))
}

// NrqlContainsFold applies the ContainsFold predicate on the "nrql" field.
func NrqlContainsFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContainsFold(FieldNrql, v))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContainsFold(FieldEngine, v))
}

// SeriesEQ applies the EQ predicate on the "series" field.
func SeriesEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSeries, v))
}

// SeriesNEQ applies the NEQ predicate on the "series" field.
func SeriesNEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldSeries, v))
}

// SeriesIn applies the In predicate on the "series" field.
func SeriesIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldSeries, vs...))
}

// SeriesNotIn applies the NotIn predicate on the "series" field.
func SeriesNotIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldSeries, vs...))
}

// SeriesGT applies the GT predicate on the "series" field.
func SeriesGT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldSeries, v))
}

// SeriesGTE applies the GTE predicate on the "series" field.
func SeriesGTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldSeries, v))
}

// SeriesLT applies the LT predicate on the "series" field.
func SeriesLT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldSeries, v))
}

// SeriesLTE applies the LTE predicate on the "series" field.
func SeriesLTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldSeries, v))
}

// RowsEQ applies the EQ predicate on the "rows" field.
func RowsEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldRows, v))
}

// RowsNEQ applies the NEQ predicate on the "rows" field.
func RowsNEQ(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldRows, v))
}

// RowsIn applies the In predicate on the "rows" field.
func RowsIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldRows, vs...))
}

// RowsNotIn applies the NotIn predicate on the "rows" field.
func RowsNotIn(vs ...int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldRows, vs...))
}

// RowsGT applies the GT predicate on the "rows" field.
func RowsGT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldRows, v))
}

// RowsGTE applies the GTE predicate on the "rows" field.
func RowsGTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldRows, v))
}

// RowsLT applies the LT predicate on the "rows" field.
func RowsLT(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldRows, v))
}

// RowsLTE applies the LTE predicate on the "rows" field.
func RowsLTE(v int) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldRows, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryRunEvent) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryRunEvent) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryRunEvent) predicate.QueryRunEvent {
	return predicate.QueryRunEvent(sql.NotPredicates(p))
}
