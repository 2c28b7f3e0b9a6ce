package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed tasks and earnings over the last week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			stats := a.eng.History()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "History"))
			fmt.Fprintln(out, ui.LabelValue("Total earned", ui.Money(stats.TotalEarned)))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", stats.TasksCompleted))
			fmt.Fprintln(out)

			var peak float64
			for _, d := range stats.Last7Days {
				if d.Amount > peak {
					peak = d.Amount
				}
			}
			for _, d := range stats.Last7Days {
				bar := ""
				if peak > 0 {
					n := int(d.Amount / peak * 20)
					for i := 0; i < n; i++ {
						bar += "▇"
					}
				}
				fmt.Fprintf(out, "  %s %s %s\n",
					ui.Muted.Render(d.Date),
					ui.Good.Render(bar),
					ui.Money(d.Amount),
				)
			}

			done := a.eng.CompletedTasks()
			if len(done) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("Completed tasks"))
			limit := 10
			if showAll || len(done) < limit {
				limit = len(done)
			}
			for _, it := range done[:limit] {
				when := time.UnixMilli(*it.CompletedAt).Format("Jan 02 15:04")
				fmt.Fprintf(out, "  %s %s %s %s\n",
					ui.IconDone, it.Title,
					ui.Good.Render("+"+ui.Money(it.Value)),
					ui.Muted.Render(when),
				)
			}
			if !showAll && len(done) > limit {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("  … %d more (use --all)", len(done)-limit)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show every completed task")

	return cmd
}
