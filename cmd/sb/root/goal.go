package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newGoalCmd() *cobra.Command {
	var (
		title  string
		target float64
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or update the savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("target") {
				st := a.eng.Snapshot()
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTarget, st.Goal.Title))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Target", ui.Money(st.Goal.TargetAmount)))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Saved", ui.Money(st.Balance)))
				fmt.Fprintln(cmd.OutOrStdout(), ui.ProgressBar(st.ProgressPercent(), 30))
				return nil
			}

			st := a.eng.Snapshot()
			goal := engine.Goal{Title: st.Goal.Title, TargetAmount: st.Goal.TargetAmount}
			if cmd.Flags().Changed("title") {
				goal.Title = title
			}
			if cmd.Flags().Changed("target") {
				goal.TargetAmount = target
			}
			if err := a.eng.UpdateGoal(goal); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTarget+" Goal updated:"),
				goal.Title,
				ui.Muted.Render(fmt.Sprintf("(target %s)", ui.Money(goal.TargetAmount))),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New goal title")
	cmd.Flags().Float64Var(&target, "target", 0, "New target amount")

	return cmd
}
