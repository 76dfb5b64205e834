package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/store"
)

const (
	priorityPrompt = "Priority: 1=Low, 2=Medium, 3=High, 4=Urgent"
	categoryPrompt = "Category: 1=Work, 2=Personal, 3=Learning, 4=Health, 5=Finance"
)

// menuOption is one numbered entry of the task menu. Options with prompts
// collect one answer per prompt before run is called.
type menuOption struct {
	label   string
	prompts []string
	run     func(s store.TaskStore, answers []string) string
	exit    bool
}

var menuOptions = []menuOption{
	{label: "Add Task", prompts: []string{"Title", priorityPrompt, categoryPrompt}, run: menuAdd},
	{label: "List All Tasks", run: menuList},
	{label: "Complete Task", prompts: []string{"Enter task ID to complete"}, run: menuComplete},
	{label: "Delete Task", prompts: []string{"Enter task ID to delete"}, run: menuDelete},
	{label: "Filter by Priority", prompts: []string{priorityPrompt}, run: menuFilterPriority},
	{label: "Filter by Category", prompts: []string{categoryPrompt}, run: menuFilterCategory},
	{label: "Show Statistics", run: menuStatistics},
	{label: "Exit", exit: true},
}

// MenuModel is the bubbletea model behind the interactive task menu.
type MenuModel struct {
	store   store.TaskStore
	cursor  int
	active  int // index of the option collecting answers, -1 while browsing
	answers []string
	input   textinput.Model
	output  string
	quit    bool
}

// NewMenuModel creates a menu over s.
func NewMenuModel(s store.TaskStore) MenuModel {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	return MenuModel{
		store:  s,
		active: -1,
		input:  ti,
	}
}

// RunMenu runs the menu until the user exits.
func RunMenu(s store.TaskStore) error {
	p := tea.NewProgram(NewMenuModel(s))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("task menu error: %w", err)
	}
	return nil
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.active >= 0 {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.quit = true
		return m, tea.Quit
	}
	if m.active >= 0 {
		return m.updatePrompt(key)
	}

	switch key.String() {
	case "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuOptions)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(m.cursor)
	default:
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(menuOptions) {
			m.cursor = n - 1
			return m.choose(m.cursor)
		}
	}
	return m, nil
}

func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	opt := menuOptions[i]
	if opt.exit {
		m.output = "Goodbye!"
		m.quit = true
		return m, tea.Quit
	}
	if len(opt.prompts) == 0 {
		m.output = opt.run(m.store, nil)
		return m, nil
	}

	m.active = i
	m.answers = nil
	m.output = ""
	m.input.Reset()
	return m, m.input.Focus()
}

func (m MenuModel) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.active = -1
		m.input.Blur()
		m.output = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		m.answers = append(m.answers, strings.TrimSpace(m.input.Value()))
		m.input.Reset()
		opt := menuOptions[m.active]
		if len(m.answers) == len(opt.prompts) {
			m.output = opt.run(m.store, m.answers)
			m.active = -1
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n" + StyleHeader.Render("Task Manager Menu") + "\n\n")
	for i, opt := range menuOptions {
		cursor := "  "
		style := StyleSubtle
		if m.cursor == i {
			cursor = "▶ "
			style = StylePrimary
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(fmt.Sprintf("%d. %s", i+1, opt.label))))
	}
	b.WriteString("\n")

	if m.active >= 0 {
		opt := menuOptions[m.active]
		b.WriteString(StyleTitle.Render(opt.prompts[len(m.answers)]) + "\n")
		b.WriteString(StyleInputBox.Render(m.input.View()) + "\n")
		b.WriteString(StyleSubtle.Render("enter confirm • esc cancel") + "\n")
		return b.String()
	}

	if m.output != "" {
		b.WriteString(m.output + "\n\n")
	}
	if !m.quit {
		b.WriteString(StyleSubtle.Render("↑/↓ navigate • 1-8 or enter choose • q quit") + "\n")
	}
	return b.String()
}

func menuAdd(s store.TaskStore, answers []string) string {
	priority, err := models.ParsePriority(answers[1])
	if err != nil {
		priority = models.PriorityMedium
	}
	category, err := models.ParseCategory(answers[2])
	if err != nil {
		category = models.CategoryPersonal
	}
	id := s.Add(answers[0], priority, category)
	return StyleSuccess.Render(fmt.Sprintf("Task #%d added successfully!", id))
}

func menuList(s store.TaskStore, _ []string) string {
	return Heading("all tasks") + "\n" + RenderTaskList(s.List())
}

func menuComplete(s store.TaskStore, answers []string) string {
	id, err := models.ParseID(answers[0])
	if err != nil {
		return StyleError.Render("Invalid ID")
	}
	if err := s.Complete(id); err != nil {
		return StyleError.Render("Error: " + err.Error())
	}
	return StyleSuccess.Render(fmt.Sprintf("Task #%d completed!", id))
}

func menuDelete(s store.TaskStore, answers []string) string {
	id, err := models.ParseID(answers[0])
	if err != nil {
		return StyleError.Render("Invalid ID")
	}
	task, err := s.Delete(id)
	if err != nil {
		return StyleError.Render("Error: " + err.Error())
	}
	return "Deleted: " + task.Summary()
}

func menuFilterPriority(s store.TaskStore, answers []string) string {
	p, err := models.ParsePriority(answers[0])
	if err != nil {
		return StyleError.Render("Invalid priority")
	}
	return renderFiltered(s, store.ByPriority(p))
}

func menuFilterCategory(s store.TaskStore, answers []string) string {
	c, err := models.ParseCategory(answers[0])
	if err != nil {
		return StyleError.Render("Invalid category")
	}
	return renderFiltered(s, store.ByCategory(c))
}

func menuStatistics(s store.TaskStore, _ []string) string {
	return Heading("statistics") + "\n" + RenderStatistics(s.Statistics())
}

func renderFiltered(s store.TaskStore, c store.Criterion) string {
	return Heading(strings.ToLower(c.String())+" tasks") + "\n" + RenderTaskList(s.FilterBy(c))
}
