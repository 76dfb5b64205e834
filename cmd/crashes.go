package cmd

import (
	"fmt"

	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List saved crash logs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if isJSON() {
			if logs == nil {
				logs = []string{}
			}
			return printJSON(out, logs)
		}
		if len(logs) == 0 {
			fmt.Fprintln(out, ui.StyleSubtle.Render("No crash logs."))
			return nil
		}

		if latest, _ := cmd.Flags().GetBool("latest"); latest {
			content, err := logger.ReadCrashLog(logs[0])
			if err != nil {
				return fmt.Errorf("read crash log: %w", err)
			}
			fmt.Fprint(out, content)
			return nil
		}
		for _, path := range logs {
			fmt.Fprintln(out, path)
		}
		return nil
	},
}

func init() {
	crashesCmd.Flags().Bool("latest", false, "print the newest crash log")
	rootCmd.AddCommand(crashesCmd)
}
