package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id|title>",
		Short: "Complete a task or credit today's habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id or title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := a.resolveItem(args[0])
			if err != nil {
				return err
			}

			res, err := a.eng.CompleteItem(item.ID)
			if errors.Is(err, engine.ErrAlreadyCompleted) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Already completed — nothing credited."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				res.Item.Title,
				ui.Muted.Render(fmt.Sprintf("(+%s)", ui.Money(res.Credited))),
			)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Money(res.Balance)))
			if res.GoalReached {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconTrophy+" ")+ui.BadgeGoal)
			}
			return nil
		},
	}

	return cmd
}
