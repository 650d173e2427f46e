package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	pickerItemStyle     = lipgloss.NewStyle().PaddingLeft(4)
	pickerSelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("6"))
	pickerHelpStyle     = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// branchItem is a list item wrapping a branch name and its description
type branchItem struct {
	name string
	desc string
}

func (i branchItem) FilterValue() string { return i.name }

// branchItemDelegate renders branch items in the picker list
type branchItemDelegate struct{}

func (d branchItemDelegate) Height() int                             { return 1 }
func (d branchItemDelegate) Spacing() int                            { return 0 }
func (d branchItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d branchItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(branchItem)
	if !ok {
		return
	}

	line := item.name
	if item.desc != "" {
		line += "  " + ColorDim(item.desc)
	}

	if index == m.Index() {
		fmt.Fprint(w, pickerSelectedStyle.Render("▸ "+line))
		return
	}
	fmt.Fprint(w, pickerItemStyle.Render(line))
}

// pickerModel is the bubbletea model for the branch picker
type pickerModel struct {
	list     list.Model
	choice   string
	canceled bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(branchItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.choice != "" || m.canceled {
		return ""
	}
	return "\n" + m.list.View()
}

// PickerOption is a selectable entry in the branch picker
type PickerOption struct {
	Name        string
	Description string
}

// PickBranch shows an interactive list of branches and returns the selection.
// Returns an empty string if the user cancels.
func PickBranch(title string, options []PickerOption) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no branches to pick from")
	}

	items := make([]list.Item, 0, len(options))
	maxWidth := 0
	for _, opt := range options {
		items = append(items, branchItem{name: opt.Name, desc: opt.Description})
		if w := len(opt.Name) + len(opt.Description); w > maxWidth {
			maxWidth = w
		}
	}

	height := len(items) + 6
	if height > 20 {
		height = 20
	}

	l := list.New(items, branchItemDelegate{}, maxWidth+12, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = pickerTitleStyle
	l.Styles.HelpStyle = pickerHelpStyle

	p := tea.NewProgram(pickerModel{list: l})
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	final, ok := finalModel.(pickerModel)
	if !ok || final.canceled {
		return "", nil
	}
	return strings.TrimSpace(final.choice), nil
}
