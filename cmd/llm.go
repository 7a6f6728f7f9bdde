package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nrqlkit/nrqltutor/internal/llm"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded explanation requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		t := newTable("ID", "When", "Purpose", "Model", "In", "Out", "Ms", "OK")
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Model", WidthMax: 28},
			{Name: "In", Align: text.AlignRight},
			{Name: "Out", Align: text.AlignRight},
			{Name: "Ms", Align: text.AlignRight},
		})
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			t.AppendRow(table.Row{
				e.ID, humanize.Time(e.Timestamp), e.Purpose, e.Model,
				e.InputTokens, e.OutputTokens, e.LatencyMs, mark(e.Success),
			})
		}
		t.Render()
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get llm event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no llm request with id %d", id)
		}

		meta := table.NewWriter()
		meta.SetOutputMirror(os.Stdout)
		meta.SetStyle(table.StyleLight)
		meta.Style().Options.SeparateRows = false
		meta.AppendRows([]table.Row{
			{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Purpose", e.Purpose},
			{"Tokens", fmt.Sprintf("%s in / %s out", humanize.Comma(int64(e.InputTokens)), humanize.Comma(int64(e.OutputTokens)))},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"Success", mark(e.Success)},
		})
		if e.ErrorMessage != "" {
			meta.AppendRow(table.Row{"Error", e.ErrorMessage})
		}
		meta.Render()

		section("Request", e.RequestBody)
		section("Response", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		byPurpose := aggregateUsage(events, func(e store.LLMRequestRecord) string { return e.Purpose })
		t := newTable("Purpose", "Calls", "Input", "Output", "Avg Ms")
		t.SetTitle("Usage by purpose")
		var sum usage
		for _, u := range byPurpose {
			t.AppendRow(table.Row{u.Key, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs()})
			sum.Calls += u.Calls
			sum.InputTokens += u.InputTokens
			sum.OutputTokens += u.OutputTokens
		}
		t.AppendFooter(table.Row{"total", sum.Calls, sum.InputTokens, sum.OutputTokens, ""})
		t.Render()
		fmt.Println()

		costs := estimateCosts(aggregateUsage(events, func(e store.LLMRequestRecord) string { return e.Model }))
		t = newTable("Model", "Calls", "Input", "Output", "Cost")
		t.SetTitle("Estimated cost (USD)")
		t.SetColumnConfigs([]table.ColumnConfig{{Name: "Model", WidthMax: 32}})
		for _, c := range costs.rows {
			cost := "?"
			if c.priced {
				cost = formatCost(c.usd)
			}
			t.AppendRow(table.Row{c.Key, c.Calls, c.InputTokens, c.OutputTokens, cost})
		}
		label := "total"
		if len(costs.unpriced) > 0 {
			label = "total (partial)"
		}
		t.AppendFooter(table.Row{label, "", "", "", formatCost(costs.total)})
		t.Render()

		if len(costs.unpriced) > 0 {
			fmt.Printf("\nNo price known for: %s\n", strings.Join(costs.unpriced, ", "))
		}
		return nil
	},
}

func newTable(header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

func section(title, body string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("─", 60))
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// usage is token usage summed over events sharing a key.
type usage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	latencyMs    int64
}

func (u usage) AvgLatencyMs() int64 {
	if u.Calls == 0 {
		return 0
	}
	return u.latencyMs / int64(u.Calls)
}

// aggregateUsage groups events by key, ordered by call count then key.
func aggregateUsage(events []store.LLMRequestRecord, key func(store.LLMRequestRecord) string) []usage {
	byKey := map[string]*usage{}
	for _, e := range events {
		k := key(e)
		u, ok := byKey[k]
		if !ok {
			u = &usage{Key: k}
			byKey[k] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		u.latencyMs += e.LatencyMs
	}
	out := make([]usage, 0, len(byKey))
	for _, u := range byKey {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calls != out[j].Calls {
			return out[i].Calls > out[j].Calls
		}
		return out[i].Key < out[j].Key
	})
	return out
}

type modelCost struct {
	usage
	usd    float64
	priced bool
}

type costReport struct {
	rows     []modelCost
	total    float64
	unpriced []string
}

// estimateCosts prices per-model usage. Models without a known price add
// nothing to the total.
func estimateCosts(byModel []usage) costReport {
	var r costReport
	for _, u := range byModel {
		c := modelCost{usage: u}
		if p, ok := llm.PriceOf(u.Key); ok {
			c.usd = p.Of(llm.Tokens{In: u.InputTokens, Out: u.OutputTokens})
			c.priced = true
			r.total += c.usd
		} else {
			r.unpriced = append(r.unpriced, u.Key)
		}
		r.rows = append(r.rows, c)
	}
	return r
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show requests with this purpose (e.g. explain)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
