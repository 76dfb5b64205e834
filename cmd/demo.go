package cmd

import (
	"fmt"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type demoStep struct {
	heading string
	lines   []string
}

var demoSteps = []demoStep{
	{"creating tasks", []string{
		`add "Learn Go basics" -p high -c learning`,
		`add "Complete final project" -p high -c learning`,
		`add "Review ownership notes" -p medium -c learning`,
		`add Exercise -p low -c health`,
		`add "Read a book" -p low -c personal`,
	}},
	{"listing", []string{"list"}},
	{"completing tasks", []string{"complete 1", "complete 4"}},
	{"tasks by status", []string{"filter status pending", "filter status completed"}},
	{"searching", []string{"search Go"}},
	{"summarizing", []string{"stats"}},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough over a fresh task store",
	Long: `Run a scripted walkthrough: create five tasks, complete two, list them by
status, search, print statistics and save the task dump.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dumpPath, _ := cmd.Flags().GetString("dump")
		if dumpPath == "" {
			dumpPath = GetConfig().Dump.Path
		}
		sess := newSession(cmd.OutOrStdout(), afero.NewOsFs(), GetConfig())
		return runDemo(sess, dumpPath)
	},
}

// runDemo plays demoSteps through sess and saves the dump to dumpPath.
// Empty dumpPath skips the save.
func runDemo(sess *session, dumpPath string) error {
	ui.RenderPageHeader(sess.out, "taskdeck demo", "every line below is a session command")

	steps := demoSteps
	if dumpPath != "" {
		steps = append(steps[:len(steps):len(steps)], demoStep{"saving", []string{fmt.Sprintf("save %q", dumpPath)}})
	}

	for _, step := range steps {
		sess.printf("\n%s\n", ui.Heading(step.heading))
		for _, line := range step.lines {
			sess.printf("%s %s\n", ui.StyleSubtle.Render(">"), line)
			if err := sess.exec(line); err != nil {
				return fmt.Errorf("demo step %q: %w", line, err)
			}
		}
	}
	return nil
}

func init() {
	demoCmd.Flags().String("dump", "", "where to save the task dump (default: dump.path from config)")
	rootCmd.AddCommand(demoCmd)
}
