package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConform(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"valid", `{"answer":"yes","reason":"counts rows","notes":["fast"]}`, true},
		{"optional omitted", `{"answer":"no","reason":"r"}`, true},
		{"fenced", "```json\n{\"answer\":\"no\",\"reason\":\"r\"}\n```", true},
		{"missing required", `{"answer":"yes"}`, false},
		{"wrong type", `{"answer":"yes","reason":7}`, false},
		{"bad enum", `{"answer":"maybe","reason":"r"}`, false},
		{"empty array", `{"answer":"yes","reason":"r","notes":[]}`, false},
		{"extra property", `{"answer":"yes","reason":"r","mood":"calm"}`, false},
		{"not json", `the answer is yes`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := conform(verdict, tt.text)
			if tt.ok {
				require.NoError(t, err)
				assert.Contains(t, string(body), `"answer"`)
				return
			}
			var out *ErrOutput
			assert.ErrorAs(t, err, &out)
		})
	}
}

func TestConform_BadSchema(t *testing.T) {
	f := &Format{Name: "broken", Schema: map[string]any{"type": 12}}
	_, err := conform(f, `{}`)
	var out *ErrOutput
	assert.ErrorAs(t, err, &out)
}

func TestUnfence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, unfence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, unfence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, unfence("  {\"a\":1}\n"))
}
