package explain

import (
	"fmt"
	"strings"
)

const systemPrompt = `You teach NRQL, the New Relic Query Language, to engineers who know SQL basics. Explain queries precisely and briefly.`

func buildUserMessage(nrql string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query:\n%s\n", nrql)
	b.WriteString(`
Instructions:
1. Summarize what the query returns in 1-3 sentences.
2. Split the query into its clauses (SELECT, FROM, WHERE, FACET, TIMESERIES, SINCE, LIMIT, COMPARE WITH and so on) in the order they appear and explain each in one sentence. Quote each clause exactly as written.
3. Explain functions such as percentile(), histogram(), funnel(), filter() or rate() where they appear, including their arguments.
4. Suggest one variation worth trying next as the tip, with the modified query.
5. Use plain text. Wrap NRQL fragments in backticks.`)

	return b.String()
}
