package printer

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"vsh/cmd/vsh/value"
)

var (
	styleHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Foreground(lipgloss.Color("99"))

	styleCell = lipgloss.NewStyle().Padding(0, 1)
)

// tableStyles returns the same header/cell styling every vsh table view
// uses, static render or interactive pager alike.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = styleHeader
	s.Cell = styleCell
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// columnsFor derives table columns from the shared key order of objects,
// sizing each column to its widest observed value (minimum width 6).
func columnsFor(objects []value.Object) []table.Column {
	keys := objects[0].Keys()
	widths := make([]int, len(keys))
	for i, k := range keys {
		widths[i] = max(len(k), 6)
	}
	for _, o := range objects {
		for i, k := range keys {
			v, _ := o.Get(k)
			if n := len(value.Stringify(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	columns := make([]table.Column, len(keys))
	for i, k := range keys {
		columns[i] = table.Column{Title: strings.ToUpper(k), Width: widths[i]}
	}
	return columns
}

// rowsFor renders each Object's values, in key order, as a table.Row.
func rowsFor(objects []value.Object) []table.Row {
	if len(objects) == 0 {
		return nil
	}
	keys := objects[0].Keys()
	rows := make([]table.Row, len(objects))
	for i, o := range objects {
		row := make(table.Row, len(keys))
		for j, k := range keys {
			v, _ := o.Get(k)
			row[j] = value.Stringify(v)
		}
		rows[i] = row
	}
	return rows
}

// RenderTable renders objects as a static (non-interactive) table. Callers
// must have already checked SameKeyOrder.
func RenderTable(objects []value.Object) string {
	columns := columnsFor(objects)
	rows := rowsFor(objects)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles())
	return t.View()
}
