package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the profile's state as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.eng.Snapshot()
			data, err := yaml.Marshal(st)
			if err != nil {
				return fmt.Errorf("marshal state: %w", err)
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items and %d rewards to %s\n",
				len(st.Items), len(st.Rewards), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "File to write (default stdout)")

	return cmd
}

func newImportCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the profile's state from a YAML export",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("export file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("import replaces the profile's current state; re-run with --yes to confirm")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			var st engine.AppState
			if err := yaml.Unmarshal(data, &st); err != nil {
				return fmt.Errorf("parse export: %w", err)
			}
			if st.Goal.Title == "" && st.Goal.TargetAmount == 0 {
				st.Goal = engine.Goal{Title: engine.DefaultGoalTitle, TargetAmount: engine.DefaultGoalTarget}
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a.eng.ImportState(st)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d items, %d rewards, balance %s\n",
				ui.Good.Render("Imported:"),
				len(st.Items), len(st.Rewards), ui.Money(st.Balance))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the replacement")

	return cmd
}
