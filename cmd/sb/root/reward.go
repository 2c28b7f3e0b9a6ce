package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Manage the reward catalog",
	}

	cmd.AddCommand(
		newRewardAddCmd(),
		newRewardRedeemCmd(),
		newRewardRmCmd(),
	)

	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var cost float64

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward to the catalog",
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

			r, err := a.eng.AddReward(args[0], cost)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added reward"),
				r.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, id %s)", ui.Money(r.Cost), shortID(r.ID))),
			)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&cost, "cost", "c", 0, "Redemption cost")

	return cmd
}

func newRewardRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <id|title>",
		Short: "Redeem a reward (repeatable while funds allow)",
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

			r, err := a.resolveReward(args[0])
			if err != nil {
				return err
			}

			res, err := a.eng.Redeem(r.ID)
			if errors.Is(err, engine.ErrInsufficientBalance) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Not enough balance."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconShop+" Redeemed"),
				res.Reward.Title,
				ui.Muted.Render(fmt.Sprintf("(-%s)", ui.Money(res.Reward.Cost))),
			)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Money(res.Balance)))
			return nil
		},
	}

	return cmd
}

func newRewardRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id|title>",
		Short: "Remove a reward from the catalog",
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

			r, err := a.resolveReward(args[0])
			if err != nil {
				return err
			}
			if err := a.eng.DeleteReward(r.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted reward"), r.Title)
			return nil
		},
	}

	return cmd
}
