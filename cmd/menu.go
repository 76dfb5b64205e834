package cmd

import (
	"errors"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/josephgoksu/taskdeck/store"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage tasks through the numbered interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return errors.New("menu needs an interactive terminal; use \"taskdeck shell\" or \"taskdeck run\" instead")
		}
		return ui.RunMenu(store.NewMemoryTaskStore())
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
