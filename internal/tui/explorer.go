// internal/tui/explorer.go
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/agential/internal/accuracy"
	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/mwiater/agential/internal/util"
)

// separator splits two-part inputs such as an answer and its key.
const separator = "---"

// operation is one text transformation selectable in the explorer.
type operation struct {
	name  string
	hint  string
	apply func(input string) string
}

var operations = []operation{
	{
		name:  "Normalize",
		hint:  "answer text",
		apply: parse.NormalizeAnswer,
	},
	{
		name: "Exact match",
		hint: "answer, then a line with ---, then the key",
		apply: func(input string) string {
			answer, key := splitPair(input)
			match := accuracy.EM(answer, key)
			return fmt.Sprintf("match: %t\nanswer: %q\nkey:    %q", match, parse.NormalizeAnswer(answer), parse.NormalizeAnswer(key))
		},
	},
	{
		name: "Parse list",
		hint: "numbered list (1. or 1))",
		apply: func(input string) string {
			return formatItems(parse.ParseList(input))
		},
	},
	{
		name: "Parse numbered list",
		hint: "numbered list, trailing periods and commas stripped",
		apply: func(input string) string {
			return formatItems(parse.ParseNumberedList(input))
		},
	},
	{
		name: "Parse action",
		hint: "Type[Argument]",
		apply: func(input string) string {
			actionType, argument := parse.ParseAction(strings.TrimSpace(input))
			if actionType == "" {
				return "not an action string"
			}
			return fmt.Sprintf("type: %s\nargument: %s", actionType, argument)
		},
	},
	{
		name: "Remove name",
		hint: "text, then a line with ---, then the name",
		apply: func(input string) string {
			text, name := splitPair(input)
			return parse.RemoveName(text, strings.TrimSpace(name))
		},
	},
	{
		name:  "Remove newline",
		hint:  "multi-line step",
		apply: parse.RemoveNewline,
	},
}

// splitPair divides input at the first separator line.
func splitPair(input string) (string, string) {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == separator {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return input, ""
}

func formatItems(items []string) string {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// model is the explorer's Bubble Tea model.
type model struct {
	textArea      textarea.Model
	viewport      viewport.Model
	selected      int
	result        string
	width, height int
}

// initialModel creates the explorer with the first operation selected.
func initialModel() *model {
	ta := textarea.New()
	ta.Placeholder = operations[0].hint
	ta.Focus()
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(6)

	m := &model{
		textArea: ta,
		viewport: viewport.New(80, 8),
	}
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key presses and resizes. The result is recomputed after
// every edit.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selectOperation(m.selected + 1)
			return m, nil
		case "shift+tab":
			m.selectOperation(m.selected - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textArea.SetWidth(msg.Width - 3)
		headerHeight := 3
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight-m.textArea.Height(), 1)
		m.refresh()
		return m, nil
	}

	m.textArea, cmd = m.textArea.Update(msg)
	cmds = append(cmds, cmd)
	m.refresh()

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// selectOperation switches to operation i, wrapping around both ends.
func (m *model) selectOperation(i int) {
	n := len(operations)
	m.selected = ((i % n) + n) % n
	m.textArea.Placeholder = operations[m.selected].hint
	logging.LogEvent("explorer: switched to %s", operations[m.selected].name)
	m.refresh()
}

// refresh reapplies the selected operation to the current input.
func (m *model) refresh() {
	m.result = ""
	if input := m.textArea.Value(); input != "" {
		m.result = operations[m.selected].apply(input)
	}
	m.viewport.SetContent(util.WrapToWidth(m.result, m.viewport.Width))
}

// View renders the operation tabs, the input and the result.
func (m *model) View() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	tabs := make([]string, len(operations))
	for i, op := range operations {
		if i == m.selected {
			tabs[i] = activeTabStyle.Render(op.name)
		} else {
			tabs[i] = tabStyle.Render(op.name)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.textArea.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Result:"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" (tab/shift+tab to change operation, esc to quit)"))
	return b.String()
}

// Run starts the explorer and blocks until the user quits or ctx is done.
func Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(initialModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running explorer: %w", err)
	}
	return nil
}
