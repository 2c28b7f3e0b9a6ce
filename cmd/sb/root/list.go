package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits, tasks and rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.eng.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.H2.Render(ui.IconHabit+" Daily Habits"))
			n := 0
			for _, it := range st.Items {
				if it.Type != engine.ItemTypeHabit {
					continue
				}
				n++
				mark := " "
				if engine.IsDoneToday(it) {
					mark = ui.IconDone
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, ui.Muted.Render(shortID(it.ID)), it.Title, ui.Muted.Render("+"+ui.Money(it.Value)))
			}
			if n == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  (none)"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTask+" Task List"))
			n = 0
			for _, it := range st.Items {
				if it.Type != engine.ItemTypeTask {
					continue
				}
				if it.Completed() && !all {
					continue
				}
				n++
				mark := " "
				if it.Completed() {
					mark = ui.IconDone
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, ui.Muted.Render(shortID(it.ID)), it.Title, ui.Muted.Render("+"+ui.Money(it.Value)))
			}
			if n == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  (none)"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconShop+" Shop"))
			if len(st.Rewards) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  (none)"))
			}
			for _, r := range st.Rewards {
				tag := ""
				if st.Balance < r.Cost {
					tag = ui.Dim.Render(" (can't afford)")
				}
				fmt.Fprintf(out, "  %s %s %s%s\n", ui.Muted.Render(shortID(r.ID)), r.Title, ui.Gold.Render(ui.Money(r.Cost)), tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")

	return cmd
}
