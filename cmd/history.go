package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent query runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failed, _ := cmd.Flags().GetBool("failed")

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.EventRepo().QueryRuns(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No query runs recorded yet.")
			return nil
		}

		t := newTable("ID", "When", "Engine", "Rows", "Ms", "OK", "Query")
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Rows", Align: text.AlignRight},
			{Name: "Ms", Align: text.AlignRight},
			{Name: "Query", WidthMax: 60},
		})
		for _, r := range runs {
			if failed && r.Success {
				continue
			}
			t.AppendRow(table.Row{
				r.ID,
				humanize.Time(r.Timestamp),
				r.Engine,
				humanize.Comma(int64(r.Rows)),
				r.LatencyMs,
				mark(r.Success),
				r.Query,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().Bool("failed", false, "Only show failed runs")
}
