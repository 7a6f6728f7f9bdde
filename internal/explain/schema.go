package explain

import "github.com/nrqlkit/nrqltutor/internal/llm"

// ExplanationFormat is the JSON shape an explanation must have.
var ExplanationFormat = &llm.Format{
	Name:        "nrql-explanation",
	Description: "A clause by clause explanation of an NRQL query",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "What the query returns, in 1-3 sentences",
			},
			"clauses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"clause": map[string]any{
							"type":        "string",
							"description": "The clause exactly as written in the query",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "What the clause contributes (one sentence)",
						},
					},
					"required":             []any{"clause", "meaning"},
					"additionalProperties": false,
				},
				"minItems": 1,
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One variation of the query worth trying next",
			},
		},
		"required":             []any{"summary", "clauses", "tip"},
		"additionalProperties": false,
	},
}
