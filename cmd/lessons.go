package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nrqlkit/nrqltutor/internal/lessons"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List tutorial levels and their lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")

		numbers := lessons.Numbers()
		if level != 0 {
			if _, ok := lessons.Level(level); !ok {
				return fmt.Errorf("unknown level %d (available: %v)", level, numbers)
			}
			numbers = []int{level}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Level", "#", "Title", "Samples"})
		for _, n := range numbers {
			ls, _ := lessons.Level(n)
			for i, l := range ls {
				t.AppendRow(table.Row{n, i + 1, l.Title, len(l.Unit().Samples())})
			}
			t.AppendSeparator()
		}
		t.Render()
		return nil
	},
}

func init() {
	lessonsCmd.Flags().IntP("level", "l", 0, "Only list lessons of this level")
}
