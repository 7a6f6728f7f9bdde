// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nrqlkit/nrqltutor/ent/bookmark"
	"github.com/nrqlkit/nrqltutor/ent/lessonactionevent"
	"github.com/nrqlkit/nrqltutor/ent/llmrequestevent"
	"github.com/nrqlkit/nrqltutor/ent/queryrunevent"
	"github.com/nrqlkit/nrqltutor/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookmarkFields := schema.Bookmark{}.Fields()
	_ = bookmarkFields
	// bookmarkDescLevel is the schema descriptor for level field.
	bookmarkDescLevel := bookmarkFields[0].Descriptor()
	// bookmark.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	bookmark.LevelValidator = bookmarkDescLevel.Validators[0].(func(int) error)
	// bookmarkDescLesson is the schema descriptor for lesson field.
	bookmarkDescLesson := bookmarkFields[1].Descriptor()
	// bookmark.LessonValidator is a validator for the "lesson" field. It is called by the builders before save.
	bookmark.LessonValidator = bookmarkDescLesson.Validators[0].(func(int) error)
	// bookmarkDescTitle is the schema descriptor for title field.
	bookmarkDescTitle := bookmarkFields[2].Descriptor()
	// bookmark.DefaultTitle holds the default value on creation for the title field.
	bookmark.DefaultTitle = bookmarkDescTitle.Default.(string)
	// bookmarkDescSavedAt is the schema descriptor for saved_at field.
	bookmarkDescSavedAt := bookmarkFields[3].Descriptor()
	// bookmark.DefaultSavedAt holds the default value on creation for the saved_at field.
	bookmark.DefaultSavedAt = bookmarkDescSavedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescSequence is the schema descriptor for sequence field.
	llmrequesteventDescSequence := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	llmrequestevent.SequenceValidator = llmrequesteventDescSequence.Validators[0].(func(int64) error)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequestevent.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	llmrequestevent.LatencyMsValidator = llmrequesteventDescLatencyMs.Validators[0].(func(int64) error)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonactioneventMixin := schema.LessonActionEvent{}.Mixin()
	lessonactioneventMixinFields0 := lessonactioneventMixin[0].Fields()
	_ = lessonactioneventMixinFields0
	lessonactioneventFields := schema.LessonActionEvent{}.Fields()
	_ = lessonactioneventFields
	// lessonactioneventDescSequence is the schema descriptor for sequence field.
	lessonactioneventDescSequence := lessonactioneventMixinFields0[0].Descriptor()
	// lessonactionevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	lessonactionevent.SequenceValidator = lessonactioneventDescSequence.Validators[0].(func(int64) error)
	// lessonactioneventDescTimestamp is the schema descriptor for timestamp field.
	lessonactioneventDescTimestamp := lessonactioneventMixinFields0[1].Descriptor()
	// lessonactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonactionevent.DefaultTimestamp = lessonactioneventDescTimestamp.Default.(func() time.Time)
	// lessonactioneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessonactioneventDescLessonTitle := lessonactioneventFields[1].Descriptor()
	// lessonactionevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonactionevent.LessonTitleValidator = lessonactioneventDescLessonTitle.Validators[0].(func(string) error)
	// lessonactioneventDescNrql is the schema descriptor for nrql field.
	lessonactioneventDescNrql := lessonactioneventFields[3].Descriptor()
	// lessonactionevent.DefaultNrql holds the default value on creation for the nrql field.
	lessonactionevent.DefaultNrql = lessonactioneventDescNrql.Default.(string)
	queryruneventMixin := schema.QueryRunEvent{}.Mixin()
	queryruneventMixinFields0 := queryruneventMixin[0].Fields()
	_ = queryruneventMixinFields0
	queryruneventFields := schema.QueryRunEvent{}.Fields()
	_ = queryruneventFields
	// queryruneventDescSequence is the schema descriptor for sequence field.
	queryruneventDescSequence := queryruneventMixinFields0[0].Descriptor()
	// queryrunevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	queryrunevent.SequenceValidator = queryruneventDescSequence.Validators[0].(func(int64) error)
	// queryruneventDescTimestamp is the schema descriptor for timestamp field.
	queryruneventDescTimestamp := queryruneventMixinFields0[1].Descriptor()
	// queryrunevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	queryrunevent.DefaultTimestamp = queryruneventDescTimestamp.Default.(func() time.Time)
	// queryruneventDescRunID is the schema descriptor for run_id field.
	queryruneventDescRunID := queryruneventFields[0].Descriptor()
	// queryrunevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	queryrunevent.RunIDValidator = queryruneventDescRunID.Validators[0].(func(string) error)
	// queryruneventDescSeries is the schema descriptor for series field.
	queryruneventDescSeries := queryruneventFields[4].Descriptor()
	// queryrunevent.DefaultSeries holds the default value on creation for the series field.
	queryrunevent.DefaultSeries = queryruneventDescSeries.Default.(int)
	// queryruneventDescRows is the schema descriptor for rows field.
	queryruneventDescRows := queryruneventFields[5].Descriptor()
	// queryrunevent.DefaultRows holds the default value on creation for the rows field.
	queryrunevent.DefaultRows = queryruneventDescRows.Default.(int)
	// queryruneventDescLatencyMs is the schema descriptor for latency_ms field.
	queryruneventDescLatencyMs := queryruneventFields[6].Descriptor()
	// queryrunevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	queryrunevent.DefaultLatencyMs = queryruneventDescLatencyMs.Default.(int64)
	// queryruneventDescErrorMessage is the schema descriptor for error_message field.
	queryruneventDescErrorMessage := queryruneventFields[8].Descriptor()
	// queryrunevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	queryrunevent.DefaultErrorMessage = queryruneventDescErrorMessage.Default.(string)
}
