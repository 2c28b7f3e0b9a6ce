package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/remote"
	"github.com/devffelix/selfbank/internal/server"
	"github.com/devffelix/selfbank/internal/ui"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync API over the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := remote.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s\n",
				ui.Good.Render(ui.IconCoin+" selfbank sync api"), addr)
			return server.NewServer(store).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "Listen address")

	return cmd
}
