package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newAddCmd() *cobra.Command {
	var value float64
	var isHabit bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task (or a daily habit)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			typ := engine.ItemTypeTask
			if isHabit {
				typ = engine.ItemTypeHabit
			}
			item, err := a.eng.AddItem(args[0], value, typ)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.KindIcon(item.Type == engine.ItemTypeHabit),
				item.Title,
				ui.Muted.Render(fmt.Sprintf("(+%s, id %s)", ui.Money(item.Value), shortID(item.ID))),
			)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&value, "value", "v", 0, "Amount credited on completion")
	cmd.Flags().BoolVar(&isHabit, "habit", false, "Create a daily habit instead of a one-time task")

	return cmd
}
