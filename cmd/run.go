package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file|->",
	Short: "Execute session commands from a script file or stdin",
	Long: `Execute session commands line by line, exactly as the shell would.
Blank lines and lines starting with # are skipped. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failFast, _ := cmd.Flags().GetBool("fail-fast")

		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		sess := newSession(cmd.OutOrStdout(), afero.NewOsFs(), GetConfig())
		if err := sess.runLines(in, "", failFast); err != nil {
			return fmt.Errorf("script %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("fail-fast", false, "stop at the first failing line and exit non-zero")
	rootCmd.AddCommand(runCmd)
}
