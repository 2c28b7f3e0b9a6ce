package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(a.eng, cmd.OutOrStdout())
		},
	}

	return cmd
}
