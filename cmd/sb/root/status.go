package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show balance, goal progress and today's habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.eng.Snapshot()
			out := cmd.OutOrStdout()

			who := a.id.UserID
			if a.id.IsOffline() {
				who = ui.IconOffline + " offline"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconCoin, "SelfBank")+" "+ui.Muted.Render("("+who+")"))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Money(st.Balance)))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render("Goal:"), st.Goal.Title,
				ui.Muted.Render(fmt.Sprintf("(%s / %s)", ui.Money(st.Balance), ui.Money(st.Goal.TargetAmount))),
			)
			fmt.Fprintln(out, ui.ProgressBar(st.ProgressPercent(), 30))
			if st.Balance >= st.Goal.TargetAmount {
				fmt.Fprintln(out, ui.IconTrophy+" "+ui.BadgeGoal)
			}

			var habits, done int
			for _, it := range st.Items {
				if it.Type != engine.ItemTypeHabit {
					continue
				}
				habits++
				if engine.IsDoneToday(it) {
					done++
				}
			}
			if habits > 0 {
				fmt.Fprintln(out, ui.LabelValue("Habits today", fmt.Sprintf("%d/%d done", done, habits)))
			}
			return nil
		},
	}

	return cmd
}
