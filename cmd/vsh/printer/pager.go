package printer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vsh/cmd/vsh/value"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// pagerModel is the bubbletea program behind the REPL's :page directive
// (SPEC_FULL.md): a scrollable view over a stage's materialized output,
// for result sets too long for a single terminal screen.
type pagerModel struct {
	table table.Model
	count int
}

func newPagerModel(objects []value.Object) pagerModel {
	var (
		columns []table.Column
		rows    []table.Row
	)
	if SameKeyOrder(objects) {
		columns = columnsFor(objects)
		rows = rowsFor(objects)
	} else {
		columns = []table.Column{{Title: "OBJECT", Width: 60}}
		rows = make([]table.Row, len(objects))
		for i, o := range objects {
			rows[i] = table.Row{o.CanonicalJSON()}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)
	t.SetStyles(tableStyles())

	return pagerModel{table: t, count: len(objects)}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	title := styleTitle.Render(fmt.Sprintf("%d object(s)", m.count))
	help := styleHelp.Render("↑/↓ scroll · q to close")
	return title + "\n" + m.table.View() + "\n" + help
}

// Page runs the interactive pager over objects until the user quits.
func Page(objects []value.Object) error {
	_, err := tea.NewProgram(newPagerModel(objects)).Run()
	return err
}
