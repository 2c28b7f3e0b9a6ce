package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devffelix/selfbank/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sb",
	Short:         "SelfBank — turn tasks and habits into a balance you spend on rewards",
	Long:          "SelfBank is an offline-first gamified tracker: completing tasks and daily habits credits a balance, which you spend on self-defined rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newListCmd(),
		newRewardCmd(),
		newGoalCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newResetCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newOfflineCmd(),
		newWhoamiCmd(),
		newExportCmd(),
		newImportCmd(),
		newServeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
