package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verdict is the schema used across the package tests.
var verdict = &Format{
	Name:        "verdict",
	Description: "A yes/no verdict with a reason.",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "enum": []any{"yes", "no"}},
			"reason": map[string]any{"type": "string"},
			"notes": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
		},
		"required":             []any{"answer", "reason"},
		"additionalProperties": false,
	},
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "explain", PurposeFrom(WithPurpose(ctx, "explain")))
}

func TestCompletionDecode(t *testing.T) {
	c := &Completion{Body: []byte(`{"answer":"yes","reason":"r"}`)}
	var v struct{ Answer, Reason string }
	require.NoError(t, c.Decode(&v))
	assert.Equal(t, "yes", v.Answer)
	assert.Equal(t, 5, Tokens{In: 2, Out: 3}.Total())
}

func TestScripted(t *testing.T) {
	boom := errors.New("boom")
	s := NewScripted(Reply{Body: `"hi"`, Tokens: Tokens{In: 1, Out: 2}}).Then(Reply{Err: boom})

	c, err := s.Complete(context.Background(), Prompt{User: "one"})
	require.NoError(t, err)
	assert.JSONEq(t, `"hi"`, string(c.Body))
	assert.Equal(t, "scripted", c.Model)
	assert.Equal(t, StopEnd, c.Stop)

	_, err = s.Complete(context.Background(), Prompt{User: "two"})
	assert.ErrorIs(t, err, boom)

	_, err = s.Complete(context.Background(), Prompt{User: "three"})
	var down *ErrUnavailable
	assert.ErrorAs(t, err, &down)

	prompts := s.Prompts()
	require.Len(t, prompts, 3)
	assert.Equal(t, "two", prompts[1].User)
	assert.Equal(t, "mock", s.Name())
}

func TestFinish(t *testing.T) {
	c, err := finish(Prompt{}, "plain words", "m", StopEnd, Tokens{In: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `"plain words"`, string(c.Body))

	// Free text may be cut short; structured answers may not.
	c, err = finish(Prompt{}, "plain", "m", StopLength, Tokens{})
	require.NoError(t, err)
	assert.Equal(t, StopLength, c.Stop)

	_, err = finish(Prompt{Format: verdict}, `{"answer":"y`, "m", StopLength, Tokens{})
	assert.ErrorIs(t, err, ErrTruncated)

	c, err = finish(Prompt{Format: verdict}, `{"answer":"no","reason":"x"}`, "m", StopEnd, Tokens{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"no","reason":"x"}`, string(c.Body))
}

func TestFromStatus(t *testing.T) {
	cause := errors.New("vendor said no")

	var rl *ErrRateLimit
	require.ErrorAs(t, fromStatus(429, cause), &rl)
	assert.ErrorIs(t, rl, cause)

	var down *ErrUnavailable
	assert.ErrorAs(t, fromStatus(503, cause), &down)
	assert.ErrorAs(t, fromStatus(408, cause), &down)

	var rej *ErrRejected
	require.ErrorAs(t, fromStatus(401, cause), &rej)
	assert.Equal(t, 401, rej.Status)
	assert.ErrorAs(t, fromStatus(400, cause), &rej)
}
