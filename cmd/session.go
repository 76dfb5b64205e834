package cmd

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/store"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// session is one in-memory task store plus the place its output goes.
// Shell, run and demo each drive exactly one session.
type session struct {
	store store.TaskStore
	fs    afero.Fs
	out   io.Writer
	cfg   *types.AppConfig
	done  bool
}

func newSession(out io.Writer, fs afero.Fs, cfg *types.AppConfig) *session {
	return &session{
		store: store.NewMemoryTaskStore(),
		fs:    fs,
		out:   out,
		cfg:   cfg,
	}
}

// exec runs one line of session input. Errors are reported to the session
// output and returned; they never end the session.
func (s *session) exec(line string) error {
	if isComment(line) {
		return nil
	}
	args, err := splitLine(line)
	if err != nil {
		s.reportError(err)
		return err
	}
	if len(args) == 0 {
		return nil
	}
	logger.SetLastInput(line)

	cmd := newSessionCommand(s)
	cmd.SetArgs(args)
	cmd.SetOut(s.out)
	cmd.SetErr(s.out)
	if err := cmd.Execute(); err != nil {
		s.reportError(err)
		return err
	}
	return nil
}

// runLines executes lines from r until EOF or exit. With failFast the first
// failing line stops the run and its error is returned.
func (s *session) runLines(r io.Reader, prompt string, failFast bool) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(s.out, ui.StylePrimary.Render(prompt))
		}
		if !scanner.Scan() {
			break
		}
		if err := s.exec(scanner.Text()); err != nil && failFast {
			return err
		}
		if s.done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

func (s *session) reportError(err error) {
	PrintError(s.out, userMessage(err), err)
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// newSessionCommand builds the command tree a session line is parsed into.
// A fresh tree per line keeps flag values from leaking between lines.
func newSessionCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskdeck",
		Short:         "Session commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(
		newAddCmd(s),
		newListCmd(s),
		newShowCmd(s),
		newIDCmd(s, "complete", "Mark a task as completed", "Task #%d completed!", s.store.Complete),
		newIDCmd(s, "start", "Move a task to in-progress", "Task #%d started.", s.store.Start),
		newIDCmd(s, "reopen", "Move a task back to pending", "Task #%d reopened.", s.store.Reopen),
		newDescribeCmd(s),
		newTagCmd(s),
		newDeleteCmd(s),
		newFilterCmd(s),
		newSearchCmd(s),
		newStatsCmd(s),
		newSaveCmd(s),
		newExportCmd(s),
		newExitCmd(s),
	)
	return root
}

func newAddCmd(s *session) *cobra.Command {
	var (
		priority    string
		category    string
		description string
		tags        []string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new pending task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := models.ParsePriority(priority)
			if err != nil {
				return err
			}
			c, err := models.ParseCategory(category)
			if err != nil {
				return err
			}
			id := s.store.AddTask(store.NewTaskInput{
				Title:       strings.Join(args, " "),
				Description: description,
				Priority:    p,
				Category:    c,
				Tags:        tags,
			})
			task, _ := s.store.Get(id)
			switch {
			case isJSON():
				return printJSON(s.out, task)
			case isQuiet():
				s.printf("%d\n", id)
			default:
				s.printf("%s\n", ui.StyleSuccess.Render(fmt.Sprintf("Task #%d added successfully!", id)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "low, medium, high or urgent")
	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryPersonal), "work, personal, learning, health or finance")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag to attach (repeatable)")
	return cmd
}

func newListCmd(s *session) *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := s.store.List()
			switch sortBy {
			case "id":
			case "priority":
				// Stable, so equal priorities keep id order.
				slices.SortStableFunc(tasks, func(a, b models.Task) int {
					return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
				})
			default:
				return types.NewInvalidInput("unknown sort %q (want id or priority)", sortBy)
			}
			return s.renderTasks("all tasks", tasks)
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "id", "order by id or priority")
	return cmd
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseID(args[0])
			if err != nil {
				return err
			}
			task, ok := s.store.Get(id)
			if !ok {
				return types.NewNotFound(id)
			}
			switch {
			case isJSON():
				return printJSON(s.out, task)
			case isQuiet():
				s.printf("%s\n", task)
			default:
				s.printf("%s\n", ui.RenderTaskDetail(task))
			}
			return nil
		},
	}
}

// newIDCmd builds a command that applies a store transition to one task id.
func newIDCmd(s *session, name, short, success string, apply func(uint32) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseID(args[0])
			if err != nil {
				return err
			}
			if err := apply(id); err != nil {
				return fmt.Errorf("%s task: %w", name, err)
			}
			if !isQuiet() {
				s.printf("%s\n", ui.StyleSuccess.Render(fmt.Sprintf(success, id)))
			}
			return nil
		},
	}
}

func newDescribeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <id> <text>",
		Short: "Replace a task's description (empty text clears it)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseID(args[0])
			if err != nil {
				return err
			}
			if err := s.store.Describe(id, strings.Join(args[1:], " ")); err != nil {
				return fmt.Errorf("describe task: %w", err)
			}
			if !isQuiet() {
				s.printf("Task #%d updated.\n", id)
			}
			return nil
		},
	}
}

func newTagCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <tag>...",
		Short: "Attach tags to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseID(args[0])
			if err != nil {
				return err
			}
			if err := s.store.Tag(id, args[1:]...); err != nil {
				return fmt.Errorf("tag task: %w", err)
			}
			if !isQuiet() {
				task, _ := s.store.Get(id)
				s.printf("Task #%d tags: %s\n", id, strings.Join(task.Tags, ", "))
			}
			return nil
		},
	}
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseID(args[0])
			if err != nil {
				return err
			}
			task, err := s.store.Delete(id)
			if err != nil {
				return fmt.Errorf("delete task: %w", err)
			}
			if isJSON() {
				return printJSON(s.out, task)
			}
			s.printf("Deleted: %s\n", task.Summary())
			return nil
		},
	}
}

func newFilterCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <priority|category|status|tag> <value>",
		Short: "List tasks matching one criterion",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			criterion, err := store.ParseCriterion(strings.ToLower(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return s.renderTasks(strings.ToLower(criterion.String())+" tasks", s.store.FilterBy(criterion))
		},
	}
}

func newSearchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find tasks whose title contains the query, ignoring case",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := s.store.Search(query)
			if isJSON() {
				return printJSON(s.out, results)
			}
			s.printf("Search '%s': %d result(s)\n", query, len(results))
			if len(results) > 0 {
				s.printf("%s", ui.RenderTaskTable(results))
			}
			return nil
		},
	}
}

func newStatsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Show task statistics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := s.store.Statistics()
			if isJSON() {
				return printJSON(s.out, struct {
					store.Statistics
					CompletionRate float64 `json:"completionRate"`
				}{stats, stats.CompletionRate()})
			}
			s.printf("%s\n%s", ui.Heading("statistics"), ui.RenderStatistics(stats))
			return nil
		},
	}
}

func newSaveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Write the pipe-delimited task dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.cfg.Dump.Path
			if len(args) == 1 {
				path = args[0]
			}
			if err := store.SaveDump(s.fs, path, s.store); err != nil {
				return fmt.Errorf("save dump: %w", err)
			}
			if !isQuiet() {
				s.printf("Saved %d task(s) to %s\n", s.store.Count(), path)
			}
			return nil
		},
	}
}

func newExportCmd(s *session) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export a JSON, YAML or TOML snapshot (to the session output without a path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if format == "" {
					format = s.cfg.Export.Format
				}
				return store.Export(s.out, s.store.List(), format)
			}
			if format == "" {
				if _, err := store.FormatFromPath(args[0]); err != nil {
					format = s.cfg.Export.Format
				}
			}
			if err := store.SaveExport(s.fs, args[0], format, s.store); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if !isQuiet() {
				s.printf("Exported %d task(s) to %s\n", s.store.Count(), args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, yaml or toml (default: from path, then config)")
	return cmd
}

func newExitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Aliases: []string{"quit"},
		Short:   "End the session",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s.done = true
			if !isQuiet() {
				s.printf("Goodbye!\n")
			}
		},
	}
}

func (s *session) renderTasks(heading string, tasks []models.Task) error {
	if isJSON() {
		return printJSON(s.out, tasks)
	}
	s.printf("%s\n%s", ui.Heading(heading), ui.RenderTaskTable(tasks))
	return nil
}
