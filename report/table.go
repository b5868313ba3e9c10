package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	unreachableStyle = cellStyle.
				Foreground(lipgloss.Color("#F87171"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
)

// WriteTable renders one row per node with its distance and the step at which
// it was finalized. Unreachable rows are highlighted.
func WriteTable(w io.Writer, g *core.Graph, d *dijkstra.Distances) error {
	step := make([]int, d.Len())
	for i, node := range d.Order() {
		step[node] = i
	}

	all := d.All()
	rows := make([][]string, 0, len(all))
	for i, x := range all {
		rows = append(rows, []string{strconv.Itoa(i), x.String(), strconv.Itoa(step[i])})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("node", "distance", "step").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(all) && !all[row].Reachable():
				return unreachableStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Shortest distances from node %d", d.Source())))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d nodes, %d edges, %d reachable",
		g.NodeCount(), g.EdgeCount(), d.Reachable())))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}
