package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/llm"
)

const facetQuery = "SELECT count(*) FROM Transaction FACET appName SINCE 1 day ago"

const validExplanation = `{
		"summary": "Counts transactions per application over the last day.",
		"clauses": [
			{"clause": "SELECT count(*)", "meaning": "Counts matching events."},
			{"clause": "FROM Transaction", "meaning": "Reads Transaction events."},
			{"clause": "FACET appName", "meaning": "Groups the count by application."}
		],
		"tip": "Add TIMESERIES to see the trend."
	}`

func TestService_Explain(t *testing.T) {
	mock := llm.NewScripted(llm.Reply{Body: validExplanation})
	svc := NewService(mock, DefaultConfig())

	e, err := svc.Explain(context.Background(), facetQuery)
	require.NoError(t, err)
	assert.Equal(t, "Counts transactions per application over the last day.", e.Summary)
	require.Len(t, e.Clauses, 3)
	assert.Equal(t, "FACET appName", e.Clauses[2].Clause)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Same(t, ExplanationFormat, prompts[0].Format)
	assert.Contains(t, prompts[0].User, facetQuery)
	assert.Equal(t, DefaultConfig().MaxTokens, prompts[0].MaxTokens)
}

func TestService_TagsPurpose(t *testing.T) {
	var purpose string
	p := providerFunc(func(ctx context.Context, _ llm.Prompt) (*llm.Completion, error) {
		purpose = llm.PurposeFrom(ctx)
		return &llm.Completion{Body: []byte(validExplanation)}, nil
	})
	_, err := NewService(p, DefaultConfig()).Explain(context.Background(), facetQuery)
	require.NoError(t, err)
	assert.Equal(t, Purpose, purpose)
}

func TestService_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	mock := llm.NewScripted(llm.Reply{Err: boom})
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), facetQuery)
	assert.ErrorIs(t, err, boom)
}

func TestService_EmptyQuery(t *testing.T) {
	mock := llm.NewScripted()
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), "  ")
	assert.Error(t, err)
	assert.Empty(t, mock.Prompts())
}

func TestExplanation_Markdown(t *testing.T) {
	e := &Explanation{
		Summary: "Counts.",
		Clauses: []Clause{{Clause: "FROM Log", Meaning: "Reads logs."}},
		Tip:     "Try FACET level.",
	}
	md := e.Markdown()
	assert.Contains(t, md, "- `FROM Log`: Reads logs.")
	assert.Contains(t, md, "**Tip:** Try FACET level.")
}

func TestService_MalformedReply(t *testing.T) {
	mock := llm.NewScripted(llm.Reply{Body: `{"summary": 3`})
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), facetQuery)
	assert.ErrorContains(t, err, "parse explanation")
}

type providerFunc func(context.Context, llm.Prompt) (*llm.Completion, error)

func (f providerFunc) Complete(ctx context.Context, p llm.Prompt) (*llm.Completion, error) {
	return f(ctx, p)
}

func (providerFunc) Name() string  { return "func" }
func (providerFunc) Model() string { return "func" }
