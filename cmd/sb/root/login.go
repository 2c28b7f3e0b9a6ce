package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/config"
	"github.com/devffelix/selfbank/internal/session"
	"github.com/devffelix/selfbank/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <user-id>",
		Short: "Switch to a synced profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("user id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			user := strings.TrimSpace(args[0])
			if user == session.OfflineUserID {
				return fmt.Errorf("%q is reserved, use 'sb offline' instead", session.OfflineUserID)
			}

			path, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.User = user
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Logged in as"), user)
			return nil
		},
	}

	return cmd
}

func newOfflineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offline",
		Short: "Switch to the local-only offline profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.User = session.OfflineUserID
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.IconOffline+" "+ui.Good.Render("Offline mode: data stays on this machine."))
			return nil
		},
	}

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.User == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active profile."))
				return nil
			}
			cfg.User = ""
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out. Local data is kept per profile.")
			return nil
		},
	}

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}

			id := session.Resolve(cfg.User)
			switch {
			case id.IsNone():
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active profile. Run 'sb login <user-id>' or 'sb offline'."))
			case id.IsOffline():
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconOffline+" offline (local only)")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), id.UserID)
			}
			return nil
		},
	}

	return cmd
}
