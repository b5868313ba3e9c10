// Package report renders a distance table for people: the plain listing
// of the original demonstration client, or a lipgloss-styled table.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// Style selects a renderer.
type Style int

const (
	// Auto renders a Table on terminals and Plain otherwise.
	Auto Style = iota
	// Plain is the line-per-node listing.
	Plain
	// Table is the styled table.
	Table
)

// String returns the style name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case Auto:
		return "auto"
	case Plain:
		return "plain"
	case Table:
		return "table"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps "auto", "plain" or "table" to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return Auto, nil
	case "plain":
		return Plain, nil
	case "table":
		return Table, nil
	default:
		return 0, fmt.Errorf("report: unknown style %q (want auto|plain|table)", name)
	}
}

// Write renders d for graph g onto w using style.
func Write(w io.Writer, style Style, g *core.Graph, d *dijkstra.Distances) error {
	if style == Auto {
		style = Plain
		if isTerminal(w) {
			style = Table
		}
	}
	if style == Table {
		return WriteTable(w, g, d)
	}

	return WritePlain(w, g, d)
}

// WritePlain writes the node and edge counts followed by one line per node:
//
//	Number of nodes = 3
//	Number of edges = 2
//	The shortest distance from node 0 to node 0 is 0
//	The shortest distance from node 0 to node 1 is 4
//	The shortest distance from node 0 to node 2 is unreachable
func WritePlain(w io.Writer, g *core.Graph, d *dijkstra.Distances) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of nodes = %d\n", g.NodeCount())
	fmt.Fprintf(&b, "Number of edges = %d\n", g.EdgeCount())
	for i, x := range d.All() {
		fmt.Fprintf(&b, "The shortest distance from node %d to node %d is %s\n", d.Source(), i, x)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
