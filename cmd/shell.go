package cmd

import (
	"os"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session over a fresh task store",
	Long: `Start an interactive session. Each line is one session command:

  add "Learn Go basics" -p high -c learning -t course
  list | show 1 | complete 1 | start 2 | reopen 1 | delete 3
  describe 1 chapters 1-3 | tag 1 weekend
  filter priority high | filter status pending | filter tag course
  search rust | stats | save [path] | export [path] -f yaml
  help | exit

Errors are reported and the session continues.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := newSession(cmd.OutOrStdout(), afero.NewOsFs(), GetConfig())

		in := cmd.InOrStdin()
		prompt := ""
		if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
			prompt = "taskdeck> "
			if !isQuiet() {
				ui.RenderPageHeader(sess.out, "task manager", `Type "help" for commands, "exit" to quit.`)
			}
		}
		return sess.runLines(in, prompt, false)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
