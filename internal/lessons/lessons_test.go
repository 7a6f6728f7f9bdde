package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/nrql"
	"github.com/nrqlkit/nrqltutor/internal/presenter"
)

func TestLevel4_Order(t *testing.T) {
	var titles []string
	for _, l := range Level4() {
		titles = append(titles, l.Title)
	}
	assert.Equal(t, []string{
		"Introduction",
		"Aggregation and bucketing",
		"Advanced maths",
		"Discover events and attributes",
		"Filter with regex",
		"Nested aggregation",
	}, titles)
}

func TestLevel4_ReturnsCopy(t *testing.T) {
	ls := Level4()
	ls[0].Title = "changed"
	assert.Equal(t, "Introduction", Level4()[0].Title)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []int{4}, Numbers())

	ls, ok := Level(4)
	require.True(t, ok)
	assert.Len(t, ls, 6)

	_, ok = Level(1)
	assert.False(t, ok)

	assert.Len(t, Levels()[4], 6)
}

func TestLevel4_UnitsRender(t *testing.T) {
	for _, l := range Level4() {
		t.Run(l.Title, func(t *testing.T) {
			c := l.Unit()
			require.NotEmpty(t, c.Blocks)
			assert.False(t, c.Blocks[0].IsSample(), "lessons open with prose")
			for _, p := range c.Samples() {
				q := nrql.Normalize(p.NRQL, p.Markdown)
				assert.NotEmpty(t, q)
				assert.NotContains(t, q, `\*`)
				if p.ChartType != "" {
					assert.Contains(t, charts.Hints(), p.ChartType)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	md := "# Title\n\nSome prose.\n\n```nrql chart=line span=12 markdown=no\nSELECT count(*)\nFROM Log TIMESERIES\n```\n\nMore prose.\n"
	c, err := Parse(md)
	require.NoError(t, err)
	require.Len(t, c.Blocks, 3)

	assert.Equal(t, "# Title\n\nSome prose.", c.Blocks[0].Markdown)
	assert.Equal(t, &presenter.Props{
		ChartType: "line",
		NRQL:      "SELECT count(*)\nFROM Log TIMESERIES",
		Span:      "12",
		Markdown:  "no",
	}, c.Blocks[1].Sample)
	assert.Equal(t, "More prose.", c.Blocks[2].Markdown)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unterminated": "```nrql\nSELECT 1 FROM Log\n",
		"empty":        "```nrql\n```\n",
		"bad attr":     "```nrql chart\nSELECT 1 FROM Log\n```\n",
		"unknown attr": "```nrql color=red\nSELECT 1 FROM Log\n```\n",
	}
	for name, md := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(md)
			assert.Error(t, err)
		})
	}
}

func TestParse_OtherFencesStayProse(t *testing.T) {
	c, err := Parse("```sql\nSELECT 1\n```")
	require.NoError(t, err)
	require.Len(t, c.Blocks, 1)
	assert.False(t, c.Blocks[0].IsSample())
}

func TestParse_FenceVariants(t *testing.T) {
	md := "Intro.\n\n~~~nrql span=4\nSELECT max(duration) FROM Transaction\n~~~\n\n> ```nrql\n> SELECT 1 FROM Log\n> ```\n"
	c, err := Parse(md)
	require.NoError(t, err)
	require.Len(t, c.Blocks, 3)

	assert.Equal(t, "Intro.", c.Blocks[0].Markdown)
	require.True(t, c.Blocks[1].IsSample())
	assert.Equal(t, "SELECT max(duration) FROM Transaction", c.Blocks[1].Sample.NRQL)
	assert.Equal(t, "4", c.Blocks[1].Sample.Span)
	assert.False(t, c.Blocks[2].IsSample(), "quoted fences are prose")
	assert.Contains(t, c.Blocks[2].Markdown, "> ```nrql")
}

func TestParse_ErrorLine(t *testing.T) {
	_, err := Parse("# Title\n\ntext\n\n```nrql colour=red\nSELECT 1 FROM Log\n```\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
}
