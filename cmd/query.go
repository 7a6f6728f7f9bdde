package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nrql"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <nrql>",
	Short: "Run one NRQL query and render it to stdout",
	Long: "Runs a query the same way a lesson sample does: the text is normalized, " +
		"the chart type is resolved from --chart or the query itself, and the " +
		"result is drawn once. In demo mode the offline engine answers.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, _ := cmd.Flags().GetString("chart")
		format, _ := cmd.Flags().GetString("format")
		markdown, _ := cmd.Flags().GetString("markdown")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		q := nrql.Normalize(strings.Join(args, " "), markdown)
		querier, err := nerdgraph.NewQuerier(querierConfig(cfg), st.EventRepo(), zap.NewNop())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.NerdGraph.Timeout)
		defer cancel()
		res, err := querier.Query(ctx, cfg.AccountID, q)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		switch format {
		case "chart":
			r := charts.Resolve(chart, q)
			fmt.Fprintf(os.Stderr, "%s · %s\n", r.Kind(), querier.Engine())
			fmt.Println(r.Render(res, width, height))
		case "table":
			renderRows(res)
		case "json":
			fmt.Print(string(pretty.Pretty(res.Raw)))
		default:
			return fmt.Errorf("unknown format %q (chart, table, json)", format)
		}
		return nil
	},
}

// renderRows prints every data point as a table row, facet first.
func renderRows(res *nerdgraph.Result) {
	rows := res.Rows()
	if len(rows) == 0 {
		fmt.Println("No rows returned.")
		return
	}

	seen := map[string]bool{}
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i, c := range cols {
			if v, ok := row[c]; ok {
				r[i] = v
			}
		}
		t.AppendRow(r)
	}
	t.Render()
}

func init() {
	queryCmd.Flags().StringP("chart", "c", "", "Chart type hint: "+strings.Join(charts.Hints(), ", "))
	queryCmd.Flags().StringP("format", "f", "chart", "Output format: chart, table, json")
	queryCmd.Flags().String("markdown", "", `Set to "no" to keep Markdown escapes in the query text`)
	queryCmd.Flags().Int("width", 80, "Chart width in columns")
	queryCmd.Flags().Int("height", 16, "Chart height in rows")
}
